package repository

import (
	"context"

	"github.com/polkiloo/tailorshop/internal/domain/model"
)

// ProductRepository describes catalog persistence.
type ProductRepository interface {
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
	// DecrementStock applies all changes in one transaction, clamping at zero.
	DecrementStock(ctx context.Context, changes []model.StockChange) ([]model.StockShortfall, error)
}
