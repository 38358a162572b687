package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/tailorshop/internal/adapter/razorpay"
	"github.com/polkiloo/tailorshop/internal/config"
	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// OrderUseCase drives checkout, payment verification and fulfillment of orders.
type OrderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	gateway   razorpay.Client
	validator *Validator
	numbers   *OrderNumberGenerator
	currency  string
	logger    *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	gateway razorpay.Client,
	validator *Validator,
	cfg *config.Config,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:    orders,
		products:  products,
		gateway:   gateway,
		validator: validator,
		numbers:   NewOrderNumberGenerator(time.Now),
		currency:  cfg.Currency,
		logger:    logger,
	}
}

// CreateOrder validates the cart, opens a gateway order and stores the
// pending order with its items.
func (u *OrderUseCase) CreateOrder(ctx context.Context, req model.CheckoutRequest) (*model.CheckoutSession, error) {
	req.Customer = normalizeCustomer(req.Customer)
	if req.Subtotal.IsZero() {
		req.Subtotal = req.Amount.Sub(req.ShippingCharges)
	}

	if err := u.validator.Struct(req); err != nil {
		return nil, err
	}
	if err := checkScale(req); err != nil {
		return nil, err
	}
	if err := checkTotals(req); err != nil {
		return nil, err
	}

	amountMinor := req.Amount.Mul(hundred).IntPart()
	if amountMinor <= 0 {
		return nil, domainErrors.NewValidationError("amount", "amount must be at least one minor unit")
	}

	number := u.numbers.Next()

	gwOrder, err := u.gateway.CreateOrder(ctx, amountMinor, u.currency, number)
	if err != nil {
		u.logger.Error("gateway order creation failed", slog.String("order_number", number), slog.Any("error", err))
		if !errors.Is(err, domainErrors.ErrGateway) {
			err = &domainErrors.GatewayError{Err: err}
		}
		return nil, err
	}

	order := &model.Order{
		OrderNumber:     number,
		CustomerID:      req.CustomerID,
		CustomerName:    req.Customer.Name,
		CustomerEmail:   req.Customer.Email,
		CustomerPhone:   req.Customer.Phone,
		CustomerAddress: req.Customer.Address,
		CustomerState:   req.Customer.State,
		Subtotal:        req.Subtotal,
		ShippingCharges: req.ShippingCharges,
		TotalAmount:     req.Amount,
		PaymentStatus:   model.PaymentStatusPending,
		OrderStatus:     model.OrderStatusPending,
		GatewayOrderID:  gwOrder.ID,
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	stored, err := u.orders.Create(ctx, order, items)
	if err != nil {
		// the gateway order stays orphaned; nothing reconciles it
		u.logger.Error("order not stored after gateway order was created",
			slog.String("order_number", number),
			slog.String("gateway_order_id", gwOrder.ID),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: store order %s: %w", domainErrors.ErrPersistence, number, err)
	}

	currency := gwOrder.Currency
	if currency == "" {
		currency = u.currency
	}
	amount := gwOrder.Amount
	if amount == 0 {
		amount = amountMinor
	}

	u.logger.Info("order created",
		slog.Int64("order_id", stored.ID),
		slog.String("order_number", stored.OrderNumber),
		slog.String("gateway_order_id", gwOrder.ID))

	return &model.CheckoutSession{
		OrderID:        stored.ID,
		GatewayOrderID: gwOrder.ID,
		OrderNumber:    stored.OrderNumber,
		Amount:         amount,
		Currency:       currency,
		KeyID:          u.gateway.KeyID(),
	}, nil
}

func normalizeCustomer(c model.CustomerInfo) model.CustomerInfo {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.State = strings.TrimSpace(c.State)
	return c
}

// checkScale rejects money with more than two decimal places; the store
// and the gateway would round such values and break the totals.
func checkScale(req model.CheckoutRequest) error {
	fields := map[string]string{}
	check := func(field string, value decimal.Decimal) {
		if !value.Equal(value.Round(2)) {
			fields[field] = fmt.Sprintf("%s must have at most 2 decimal places", field)
		}
	}
	check("amount", req.Amount)
	check("subtotal", req.Subtotal)
	check("shippingCharges", req.ShippingCharges)
	for i, item := range req.Items {
		check(fmt.Sprintf("items[%d].price", i), item.Price)
	}
	if len(fields) > 0 {
		return &domainErrors.ValidationError{Fields: fields}
	}
	return nil
}

func checkTotals(req model.CheckoutRequest) error {
	itemsTotal := decimal.Zero
	for _, item := range req.Items {
		itemsTotal = itemsTotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !req.Subtotal.Equal(itemsTotal) {
		return domainErrors.NewValidationError("subtotal",
			fmt.Sprintf("subtotal %s does not match items total %s", req.Subtotal, itemsTotal))
	}
	if !req.Amount.Equal(req.Subtotal.Add(req.ShippingCharges)) {
		return domainErrors.NewValidationError("amount",
			fmt.Sprintf("amount %s does not match subtotal plus shipping %s", req.Amount, req.Subtotal.Add(req.ShippingCharges)))
	}
	return nil
}

// VerifyPayment checks the gateway callback and settles the order. A
// signature mismatch is reported through Verified, not as an error.
func (u *OrderUseCase) VerifyPayment(ctx context.Context, conf model.PaymentConfirmation) (*model.PaymentVerification, error) {
	if err := u.validator.Struct(conf); err != nil {
		return nil, err
	}

	order, err := u.orders.GetByID(ctx, conf.OrderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus != model.PaymentStatusPending {
		u.logger.Info("payment already settled",
			slog.Int64("order_id", order.ID),
			slog.String("payment_status", string(order.PaymentStatus)))
		return &model.PaymentVerification{Verified: order.PaymentStatus.Succeeded(), Duplicate: true, Order: order}, nil
	}

	// a callback for another gateway order says nothing about this one
	if order.GatewayOrderID != conf.GatewayOrderID {
		u.logger.Warn("payment callback for foreign gateway order",
			slog.Int64("order_id", order.ID),
			slog.String("gateway_order_id", conf.GatewayOrderID))
		return &model.PaymentVerification{Verified: false, Order: order}, nil
	}
	if !u.gateway.VerifySignature(conf.GatewayOrderID, conf.GatewayPaymentID, conf.Signature) {
		return u.rejectPayment(ctx, order)
	}

	paid, won, err := u.orders.MarkPaid(ctx, order.ID, conf.GatewayPaymentID, conf.Signature)
	if err != nil {
		return nil, fmt.Errorf("confirm payment of order %d: %w", order.ID, err)
	}
	if !won {
		current, err := u.orders.GetByID(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		return &model.PaymentVerification{Verified: current.PaymentStatus.Succeeded(), Duplicate: true, Order: current}, nil
	}

	u.logger.Info("payment verified",
		slog.Int64("order_id", paid.ID),
		slog.String("order_number", paid.OrderNumber))

	result := &model.PaymentVerification{Verified: true, Order: paid}

	shortfalls, err := u.decrementStock(ctx, paid.ID)
	if err != nil {
		u.logger.Error("stock not updated for paid order", slog.Int64("order_id", paid.ID), slog.Any("error", err))
		return result, fmt.Errorf("%w: order %d: %w", domainErrors.ErrStockUpdate, paid.ID, err)
	}
	for _, s := range shortfalls {
		u.logger.Warn("oversold product",
			slog.Int64("order_id", paid.ID),
			slog.Int64("product_id", s.ProductID),
			slog.Int("requested", s.Requested),
			slog.Int("applied", s.Applied),
			slog.Bool("missing", s.Missing))
	}
	result.Shortfalls = shortfalls
	return result, nil
}

func (u *OrderUseCase) rejectPayment(ctx context.Context, order *model.Order) (*model.PaymentVerification, error) {
	u.logger.Warn("payment signature mismatch",
		slog.Int64("order_id", order.ID),
		slog.String("order_number", order.OrderNumber))

	failed, changed, err := u.orders.MarkFailed(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("fail payment of order %d: %w", order.ID, err)
	}
	if !changed {
		return &model.PaymentVerification{Verified: false, Duplicate: true, Order: order}, nil
	}
	return &model.PaymentVerification{Verified: false, Order: failed}, nil
}

func (u *OrderUseCase) decrementStock(ctx context.Context, orderID int64) ([]model.StockShortfall, error) {
	items, err := u.orders.Items(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	changes := make([]model.StockChange, 0, len(items))
	for _, item := range items {
		changes = append(changes, model.StockChange{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return u.products.DecrementStock(ctx, changes)
}

// GetOrderByNumber returns an order with items and timeline for public tracking.
func (u *OrderUseCase) GetOrderByNumber(ctx context.Context, number string) (*model.OrderDetails, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, domainErrors.ErrNotFound
	}
	order, err := u.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return u.details(ctx, order)
}

// OrderByID returns an order with items and timeline for the back office.
func (u *OrderUseCase) OrderByID(ctx context.Context, id int64) (*model.OrderDetails, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.details(ctx, order)
}

// CustomerOrders returns the order history of a customer, newest first.
func (u *OrderUseCase) CustomerOrders(ctx context.Context, customerID int64) ([]model.OrderDetails, error) {
	orders, err := u.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	result := make([]model.OrderDetails, 0, len(orders))
	for i := range orders {
		details, err := u.details(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *details)
	}
	return result, nil
}

// AllOrders lists every order, newest first.
func (u *OrderUseCase) AllOrders(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// UpdateOrderStatus moves a non-terminal order to status.
func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.OrderStatus.Terminal() {
		if order.OrderStatus == status {
			return order, nil
		}
		return nil, fmt.Errorf("%w: order %d is %s", domainErrors.ErrInvalidStatusTransition, id, order.OrderStatus)
	}

	updated, err := u.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			// became terminal after it was loaded
			return nil, fmt.Errorf("%w: order %d", domainErrors.ErrInvalidStatusTransition, id)
		}
		return nil, err
	}

	u.logger.Info("order status updated",
		slog.Int64("order_id", id),
		slog.String("from", string(order.OrderStatus)),
		slog.String("to", string(updated.OrderStatus)))
	return updated, nil
}

func (u *OrderUseCase) details(ctx context.Context, order *model.Order) (*model.OrderDetails, error) {
	items, err := u.orders.Items(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &model.OrderDetails{Order: *order, Items: items, Timeline: DeriveTimeline(*order)}, nil
}

// OrderNumberGenerator issues "ORD<unix millis>" numbers that never repeat
// within the process, even for calls in the same millisecond.
type OrderNumberGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewOrderNumberGenerator creates a generator reading time from now.
func NewOrderNumberGenerator(now func() time.Time) *OrderNumberGenerator {
	return &OrderNumberGenerator{now: now}
}

// Next returns the next order number.
func (g *OrderNumberGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return "ORD" + strconv.FormatInt(n, 10)
}
