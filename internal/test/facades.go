package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/tailorshop/internal/domain/model"
)

var stubTime = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// AuthFacadeStub simulates account and token operations.
type AuthFacadeStub struct {
	SignUpFn        func(context.Context, model.Registration) (*model.Customer, string, error)
	LoginFn         func(context.Context, string, string) (*model.Customer, string, error)
	AdminLoginFn    func(context.Context, string, string) (*model.Admin, string, error)
	ProfileFn       func(context.Context, int64) (*model.Customer, error)
	UpdateProfileFn func(context.Context, int64, model.CustomerUpdate) (*model.Customer, error)
	ParseFn         func(string) (model.Principal, error)
}

// SignUp returns a customer built from the registration.
func (s AuthFacadeStub) SignUp(ctx context.Context, reg model.Registration) (*model.Customer, string, error) {
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, reg)
	}
	return &model.Customer{ID: 1, Name: reg.Name, Email: reg.Email, Phone: reg.Phone}, "token", nil
}

// Login returns a default customer.
func (s AuthFacadeStub) Login(ctx context.Context, identifier, password string) (*model.Customer, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, identifier, password)
	}
	return &model.Customer{ID: 1, Email: identifier}, "token", nil
}

// AdminLogin returns a default admin.
func (s AuthFacadeStub) AdminLogin(ctx context.Context, username, password string) (*model.Admin, string, error) {
	if s.AdminLoginFn != nil {
		return s.AdminLoginFn(ctx, username, password)
	}
	return &model.Admin{ID: 1, Username: username}, "admin-token", nil
}

// Profile returns a default customer with requested id.
func (s AuthFacadeStub) Profile(ctx context.Context, customerID int64) (*model.Customer, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, customerID)
	}
	return &model.Customer{ID: customerID, Name: "A", Email: "a@b.com", Phone: "9999999999", CreatedAt: stubTime}, nil
}

// UpdateProfile echoes applied fields.
func (s AuthFacadeStub) UpdateProfile(ctx context.Context, customerID int64, update model.CustomerUpdate) (*model.Customer, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, customerID, update)
	}
	c := &model.Customer{ID: customerID}
	if update.Name != nil {
		c.Name = *update.Name
	}
	return c, nil
}

// ParseToken resolves every token to customer 1 unless overridden.
func (s AuthFacadeStub) ParseToken(token string) (model.Principal, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Principal{ID: 1, Role: model.RoleCustomer}, nil
}

// CatalogFacadeStub simulates catalog operations.
type CatalogFacadeStub struct {
	ProductsFn      func(context.Context, string) ([]model.Product, error)
	ProductFn       func(context.Context, int64) (*model.Product, error)
	CategoriesFn    func(context.Context) ([]string, error)
	AllProductsFn   func(context.Context) ([]model.Product, error)
	CreateProductFn func(context.Context, model.Product) (*model.Product, error)
	UpdateProductFn func(context.Context, int64, model.Product) (*model.Product, error)
	DeleteProductFn func(context.Context, int64) error
}

func (s CatalogFacadeStub) Products(ctx context.Context, category string) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, category)
	}
	return []model.Product{{ID: 1, Name: "Blouse", Price: decimal.NewFromInt(250), Category: category, Stock: 5, IsAvailable: true}}, nil
}

func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Blouse", Price: decimal.NewFromInt(250), IsAvailable: true}, nil
}

func (s CatalogFacadeStub) Categories(ctx context.Context) ([]string, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []string{"blouses"}, nil
}

func (s CatalogFacadeStub) AllProducts(ctx context.Context) ([]model.Product, error) {
	if s.AllProductsFn != nil {
		return s.AllProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Blouse"}, {ID: 2, Name: "Saree"}}, nil
}

func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	product.ID = 10
	return &product, nil
}

func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id int64, product model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, product)
	}
	product.ID = id
	return &product, nil
}

func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateOrderFn       func(context.Context, model.CheckoutRequest) (*model.CheckoutSession, error)
	VerifyPaymentFn     func(context.Context, model.PaymentConfirmation) (*model.PaymentVerification, error)
	TrackOrderFn        func(context.Context, string) (*model.OrderDetails, error)
	CustomerOrdersFn    func(context.Context, int64) ([]model.OrderDetails, error)
	AllOrdersFn         func(context.Context) ([]model.Order, error)
	OrderByIDFn         func(context.Context, int64) (*model.OrderDetails, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, req model.CheckoutRequest) (*model.CheckoutSession, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, req)
	}
	return &model.CheckoutSession{OrderID: 1, GatewayOrderID: "order_1", OrderNumber: "ORD1", Amount: 50000, Currency: "INR", KeyID: "rzp_test"}, nil
}

func (s OrderFacadeStub) VerifyPayment(ctx context.Context, conf model.PaymentConfirmation) (*model.PaymentVerification, error) {
	if s.VerifyPaymentFn != nil {
		return s.VerifyPaymentFn(ctx, conf)
	}
	return &model.PaymentVerification{Verified: true, Order: &model.Order{ID: conf.OrderID}}, nil
}

func (s OrderFacadeStub) TrackOrder(ctx context.Context, number string) (*model.OrderDetails, error) {
	if s.TrackOrderFn != nil {
		return s.TrackOrderFn(ctx, number)
	}
	return SampleOrderDetails(number), nil
}

func (s OrderFacadeStub) CustomerOrders(ctx context.Context, customerID int64) ([]model.OrderDetails, error) {
	if s.CustomerOrdersFn != nil {
		return s.CustomerOrdersFn(ctx, customerID)
	}
	return []model.OrderDetails{*SampleOrderDetails("ORD1")}, nil
}

func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{SampleOrderDetails("ORD1").Order}, nil
}

func (s OrderFacadeStub) OrderByID(ctx context.Context, id int64) (*model.OrderDetails, error) {
	if s.OrderByIDFn != nil {
		return s.OrderByIDFn(ctx, id)
	}
	details := SampleOrderDetails("ORD1")
	details.Order.ID = id
	return details, nil
}

func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, id, status)
	}
	order := SampleOrderDetails("ORD1").Order
	order.ID = id
	order.OrderStatus = status
	return &order, nil
}

// HealthFacadeStub reports configured storage health.
type HealthFacadeStub struct {
	Err error
}

func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	HealthFacadeStub
}

// SampleOrderDetails returns a paid order with one item.
func SampleOrderDetails(number string) *model.OrderDetails {
	order := model.Order{
		ID:              1,
		OrderNumber:     number,
		CustomerName:    "A",
		CustomerEmail:   "a@b.com",
		CustomerPhone:   "9999999999",
		CustomerAddress: "X",
		Subtotal:        decimal.NewFromInt(500),
		ShippingCharges: decimal.Zero,
		TotalAmount:     decimal.NewFromInt(500),
		PaymentStatus:   model.PaymentStatusCompleted,
		OrderStatus:     model.OrderStatusConfirmed,
		GatewayOrderID:  "order_1",
		CreatedAt:       stubTime,
		UpdatedAt:       stubTime,
	}
	items := []model.OrderItem{{ID: 1, OrderID: 1, ProductID: 7, ProductName: "Blouse", Quantity: 2, Price: decimal.NewFromInt(250)}}
	completed := stubTime
	timeline := []model.TimelineStep{
		{Status: "placed", Label: "Order Placed", Completed: true, Date: &completed, Description: "Your order has been received"},
		{Status: "payment", Label: "Payment Confirmed", Completed: true, Date: &completed, Description: "Payment has been verified"},
		{Status: "processing", Label: "Processing", Description: "Order will be processed after payment"},
		{Status: "shipped", Label: "Shipped", Description: "Order will be shipped soon"},
		{Status: "delivered", Label: "Delivered", Description: "Estimated delivery in 3-5 days"},
	}
	return &model.OrderDetails{Order: order, Items: items, Timeline: timeline}
}
