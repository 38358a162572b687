package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/domain/repository"
)

// CustomerRepositoryStub stores customers in-memory for tests.
type CustomerRepositoryStub struct {
	ByID map[int64]*model.Customer
	Next int64
	Err  error
}

// NewCustomerRepositoryStub constructs stub repository with initialized maps.
func NewCustomerRepositoryStub() *CustomerRepositoryStub {
	return &CustomerRepositoryStub{ByID: make(map[int64]*model.Customer), Next: 1}
}

// Create registers customer unless the email or phone is taken or stub has explicit error.
func (s *CustomerRepositoryStub) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Customer)
	}
	for _, c := range s.ByID {
		if c.Email == customer.Email || c.Phone == customer.Phone {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *customer
	stored.ID = s.Next
	stored.CreatedAt = time.Unix(0, 0)
	s.Next++
	s.ByID[stored.ID] = &stored
	out := stored
	return &out, nil
}

// GetByID fetches customer by identifier or returns not found.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if c, ok := s.ByID[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches customer by email or returns not found.
func (s *CustomerRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return s.find(func(c *model.Customer) bool { return c.Email == email })
}

// GetByPhone fetches the oldest customer with phone or returns not found.
func (s *CustomerRepositoryStub) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	return s.find(func(c *model.Customer) bool { return c.Phone == phone })
}

// Update applies non-nil fields of update.
func (s *CustomerRepositoryStub) Update(ctx context.Context, id int64, update model.CustomerUpdate) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	c, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Phone != nil {
		for otherID, other := range s.ByID {
			if otherID != id && other.Phone == *update.Phone {
				return nil, domainErrors.ErrAlreadyExists
			}
		}
	}
	if update.Name != nil {
		c.Name = *update.Name
	}
	if update.Phone != nil {
		c.Phone = *update.Phone
	}
	if update.Address != nil {
		c.Address = *update.Address
	}
	out := *c
	return &out, nil
}

func (s *CustomerRepositoryStub) find(match func(*model.Customer) bool) (*model.Customer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	ids := make([]int64, 0, len(s.ByID))
	for id := range s.ByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if c := s.ByID[id]; match(c) {
			out := *c
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// AdminRepositoryStub stores admins keyed by username.
type AdminRepositoryStub struct {
	Admins map[string]*model.Admin
	Next   int64
	Err    error
}

// GetByUsername returns stored admin or not found.
func (s *AdminRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if a, ok := s.Admins[username]; ok {
		out := *a
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Upsert creates admin or replaces its password hash.
func (s *AdminRepositoryStub) Upsert(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Admins == nil {
		s.Admins = make(map[string]*model.Admin)
	}
	if a, ok := s.Admins[username]; ok {
		a.PasswordHash = passwordHash
		out := *a
		return &out, nil
	}
	s.Next++
	a := &model.Admin{ID: s.Next, Username: username, PasswordHash: passwordHash}
	s.Admins[username] = a
	out := *a
	return &out, nil
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	ListFn           func(context.Context, model.ProductFilter) ([]model.Product, error)
	GetByIDFn        func(context.Context, int64) (*model.Product, error)
	CategoriesFn     func(context.Context) ([]string, error)
	CreateFn         func(context.Context, *model.Product) (*model.Product, error)
	UpdateFn         func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn         func(context.Context, int64) error
	DecrementStockFn func(context.Context, []model.StockChange) ([]model.StockShortfall, error)

	Products   []model.Product
	Decrements [][]model.StockChange
	mu         sync.Mutex
}

// List returns configured products.
func (s *ProductRepositoryStub) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Products, nil
}

// GetByID returns matching configured product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Categories returns override result or none.
func (s *ProductRepositoryStub) Categories(ctx context.Context) ([]string, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return nil, nil
}

// Create echoes product with an assigned identifier.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	out := *product
	out.ID = int64(len(s.Products) + 1)
	return &out, nil
}

// Update echoes product.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	out := *product
	return &out, nil
}

// Delete applies override when provided.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// DecrementStock records the batch and delegates to override.
func (s *ProductRepositoryStub) DecrementStock(ctx context.Context, changes []model.StockChange) ([]model.StockShortfall, error) {
	s.mu.Lock()
	s.Decrements = append(s.Decrements, changes)
	s.mu.Unlock()
	if s.DecrementStockFn != nil {
		return s.DecrementStockFn(ctx, changes)
	}
	return nil, nil
}

// DecrementCalls returns the number of recorded stock batches.
func (s *ProductRepositoryStub) DecrementCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Decrements)
}

// OrderRepositoryStub keeps orders in-memory and applies the same pending
// guards as the SQL store. Fn fields override single operations.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order, []model.OrderItem) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ItemsFn        func(context.Context, int64) ([]model.OrderItem, error)
	ListFn         func(context.Context) ([]model.Order, error)
	MarkPaidFn     func(context.Context, int64, string, string) (*model.Order, bool, error)
	MarkFailedFn   func(context.Context, int64) (*model.Order, bool, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)

	Orders     map[int64]*model.Order
	OrderItems map[int64][]model.OrderItem
	Next       int64
	Now        time.Time
	mu         sync.Mutex
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{
		Orders:     make(map[int64]*model.Order),
		OrderItems: make(map[int64][]model.OrderItem),
		Next:       1,
		Now:        time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Put stores order and items as is and returns the order id.
func (s *OrderRepositoryStub) Put(order model.Order, items ...model.OrderItem) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID == 0 {
		order.ID = s.Next
	}
	if order.ID >= s.Next {
		s.Next = order.ID + 1
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	s.Orders[order.ID] = &order
	s.OrderItems[order.ID] = items
	return order.ID
}

// Create stores order with items, rejecting duplicate numbers.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order, items)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.OrderNumber == order.OrderNumber {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	stored := *order
	stored.ID = s.Next
	stored.CreatedAt = s.Now
	stored.UpdatedAt = s.Now
	s.Next++
	copied := make([]model.OrderItem, len(items))
	for i, item := range items {
		item.ID = int64(i + 1)
		item.OrderID = stored.ID
		copied[i] = item
	}
	s.Orders[stored.ID] = &stored
	s.OrderItems[stored.ID] = copied
	out := stored
	return &out, nil
}

// GetByID returns stored order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.Orders[id]; ok {
		out := *o
		return &out, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByNumber returns stored order with number or not found.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.OrderNumber == number {
			out := *o
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Items returns stored items of order.
func (s *OrderRepositoryStub) Items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderItem(nil), s.OrderItems[orderID]...), nil
}

// List returns stored orders, highest id first.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.filter(func(*model.Order) bool { return true }), nil
}

// ListByCustomer returns stored orders of customer, highest id first.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return s.filter(func(o *model.Order) bool {
		return o.CustomerID != nil && *o.CustomerID == customerID
	}), nil
}

// MarkPaid confirms a pending order.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, id int64, paymentID, signature string) (*model.Order, bool, error) {
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, id, paymentID, signature)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[id]
	if !ok || o.PaymentStatus != model.PaymentStatusPending {
		return nil, false, nil
	}
	o.PaymentStatus = model.PaymentStatusCompleted
	o.OrderStatus = model.OrderStatusConfirmed
	o.GatewayPaymentID = &paymentID
	o.GatewaySignature = &signature
	o.UpdatedAt = s.Now
	out := *o
	return &out, true, nil
}

// MarkFailed fails a pending order.
func (s *OrderRepositoryStub) MarkFailed(ctx context.Context, id int64) (*model.Order, bool, error) {
	if s.MarkFailedFn != nil {
		return s.MarkFailedFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[id]
	if !ok || o.PaymentStatus != model.PaymentStatusPending {
		return nil, false, nil
	}
	o.PaymentStatus = model.PaymentStatusFailed
	o.UpdatedAt = s.Now
	out := *o
	return &out, true, nil
}

// UpdateStatus changes status of a non-terminal order.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.Orders[id]
	if !ok || o.OrderStatus.Terminal() {
		return nil, domainErrors.ErrNotFound
	}
	o.OrderStatus = status
	o.UpdatedAt = s.Now
	out := *o
	return &out, nil
}

func (s *OrderRepositoryStub) filter(match func(*model.Order) bool) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		if match(o) {
			result = append(result, *o)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result
}

var (
	_ repository.CustomerRepository = (*CustomerRepositoryStub)(nil)
	_ repository.AdminRepository    = (*AdminRepositoryStub)(nil)
	_ repository.ProductRepository  = (*ProductRepositoryStub)(nil)
	_ repository.OrderRepository    = (*OrderRepositoryStub)(nil)
)
