package repository

import (
	"context"

	"github.com/polkiloo/tailorshop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create stores the order together with all its items atomically.
	Create(ctx context.Context, order *model.Order, items []model.OrderItem) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	Items(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	List(ctx context.Context) ([]model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	// MarkPaid confirms a pending order. It reports false when the order
	// was no longer pending.
	MarkPaid(ctx context.Context, id int64, paymentID, signature string) (*model.Order, bool, error)
	// MarkFailed fails a pending order. It reports false when the order
	// was no longer pending.
	MarkFailed(ctx context.Context, id int64) (*model.Order, bool, error)
	// UpdateStatus changes fulfillment status of a non-terminal order.
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}
