package app

import (
	"context"

	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/usecase"
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade exposes storefront, account and back office operations to transports.
type ShopFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	health  HealthChecker
}

func NewShopFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, health HealthChecker) *ShopFacade {
	return &ShopFacade{auth: auth, catalog: catalog, orders: orders, health: health}
}

func (f *ShopFacade) SignUp(ctx context.Context, reg model.Registration) (*model.Customer, string, error) {
	return f.auth.SignUp(ctx, reg)
}

func (f *ShopFacade) Login(ctx context.Context, identifier, password string) (*model.Customer, string, error) {
	return f.auth.Login(ctx, identifier, password)
}

func (f *ShopFacade) AdminLogin(ctx context.Context, username, password string) (*model.Admin, string, error) {
	return f.auth.AdminLogin(ctx, username, password)
}

func (f *ShopFacade) Profile(ctx context.Context, customerID int64) (*model.Customer, error) {
	return f.auth.Profile(ctx, customerID)
}

func (f *ShopFacade) UpdateProfile(ctx context.Context, customerID int64, update model.CustomerUpdate) (*model.Customer, error) {
	return f.auth.UpdateProfile(ctx, customerID, update)
}

func (f *ShopFacade) ParseToken(token string) (model.Principal, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) Products(ctx context.Context, category string) ([]model.Product, error) {
	return f.catalog.ListProducts(ctx, category)
}

func (f *ShopFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Product(ctx, id)
}

func (f *ShopFacade) Categories(ctx context.Context) ([]string, error) {
	categories, err := f.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (f *ShopFacade) AllProducts(ctx context.Context) ([]model.Product, error) {
	return f.catalog.AllProducts(ctx)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *ShopFacade) UpdateProduct(ctx context.Context, id int64, product model.Product) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, id, product)
}

func (f *ShopFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

func (f *ShopFacade) CreateOrder(ctx context.Context, req model.CheckoutRequest) (*model.CheckoutSession, error) {
	return f.orders.CreateOrder(ctx, req)
}

func (f *ShopFacade) VerifyPayment(ctx context.Context, conf model.PaymentConfirmation) (*model.PaymentVerification, error) {
	return f.orders.VerifyPayment(ctx, conf)
}

func (f *ShopFacade) TrackOrder(ctx context.Context, number string) (*model.OrderDetails, error) {
	return f.orders.GetOrderByNumber(ctx, number)
}

func (f *ShopFacade) CustomerOrders(ctx context.Context, customerID int64) ([]model.OrderDetails, error) {
	return f.orders.CustomerOrders(ctx, customerID)
}

func (f *ShopFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.AllOrders(ctx)
}

func (f *ShopFacade) OrderByID(ctx context.Context, id int64) (*model.OrderDetails, error) {
	return f.orders.OrderByID(ctx, id)
}

func (f *ShopFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateOrderStatus(ctx, id, status)
}

func (f *ShopFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
