package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/domain/repository"
)

// CatalogUseCase serves the storefront catalog and its back office editing.
type CatalogUseCase struct {
	products  repository.ProductRepository
	validator *Validator
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, validator *Validator) *CatalogUseCase {
	return &CatalogUseCase{products: products, validator: validator}
}

// ListProducts returns available products, optionally of one category.
func (u *CatalogUseCase) ListProducts(ctx context.Context, category string) ([]model.Product, error) {
	return u.products.List(ctx, model.ProductFilter{Category: strings.TrimSpace(category), AvailableOnly: true})
}

// AllProducts returns the whole catalog including hidden products.
func (u *CatalogUseCase) AllProducts(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx, model.ProductFilter{})
}

func (u *CatalogUseCase) Product(ctx context.Context, id int64) (*model.Product, error) {
	if id <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	return u.products.GetByID(ctx, id)
}

func (u *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	return u.products.Categories(ctx)
}

// CreateProduct validates and stores a new catalog entry.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	product = normalizeProduct(product)
	if err := u.validator.Struct(product); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, &product)
}

// UpdateProduct replaces editable fields of product with the given id.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, id int64, product model.Product) (*model.Product, error) {
	if id <= 0 {
		return nil, domainErrors.ErrNotFound
	}
	product = normalizeProduct(product)
	product.ID = id
	if err := u.validator.Struct(product); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, &product)
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainErrors.ErrNotFound
	}
	return u.products.Delete(ctx, id)
}

func normalizeProduct(p model.Product) model.Product {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	return p
}
