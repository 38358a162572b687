package handlers

import (
	"context"

	"github.com/polkiloo/tailorshop/internal/domain/model"
)

// AuthFacade describes account capabilities required by handlers.
type AuthFacade interface {
	SignUp(ctx context.Context, reg model.Registration) (*model.Customer, string, error)
	Login(ctx context.Context, identifier, password string) (*model.Customer, string, error)
	AdminLogin(ctx context.Context, username, password string) (*model.Admin, string, error)
	Profile(ctx context.Context, customerID int64) (*model.Customer, error)
	UpdateProfile(ctx context.Context, customerID int64, update model.CustomerUpdate) (*model.Customer, error)
	ParseToken(token string) (model.Principal, error)
}

// CatalogFacade covers storefront listing and back office product editing.
type CatalogFacade interface {
	Products(ctx context.Context, category string) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	AllProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, req model.CheckoutRequest) (*model.CheckoutSession, error)
	VerifyPayment(ctx context.Context, conf model.PaymentConfirmation) (*model.PaymentVerification, error)
	TrackOrder(ctx context.Context, number string) (*model.OrderDetails, error)
	CustomerOrders(ctx context.Context, customerID int64) ([]model.OrderDetails, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	OrderByID(ctx context.Context, id int64) (*model.OrderDetails, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}

type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	HealthFacade
}
