package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
	testhelpers "github.com/polkiloo/tailorshop/internal/test"
)

func TestCatalogListFilters(t *testing.T) {
	var filters []model.ProductFilter
	repo := &testhelpers.ProductRepositoryStub{ListFn: func(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
		filters = append(filters, filter)
		return []model.Product{{ID: 1}}, nil
	}}
	uc := NewCatalogUseCase(repo, NewValidator())

	if _, err := uc.ListProducts(context.Background(), " blouses "); err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if _, err := uc.AllProducts(context.Background()); err != nil {
		t.Fatalf("all products returned error: %v", err)
	}

	if filters[0] != (model.ProductFilter{Category: "blouses", AvailableOnly: true}) {
		t.Fatalf("unexpected storefront filter %+v", filters[0])
	}
	if filters[1] != (model.ProductFilter{}) {
		t.Fatalf("unexpected back office filter %+v", filters[1])
	}
}

func TestCatalogProduct(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{Products: []model.Product{
		{ID: 3, Name: "Hidden kurti", IsAvailable: false},
	}}
	uc := NewCatalogUseCase(repo, NewValidator())

	product, err := uc.Product(context.Background(), 3)
	if err != nil || product.Name != "Hidden kurti" {
		t.Fatalf("unexpected product %+v err=%v", product, err)
	}
	for _, id := range []int64{0, -1, 4} {
		if _, err := uc.Product(context.Background(), id); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found for %d, got %v", id, err)
		}
	}
}

func TestCatalogCategories(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{CategoriesFn: func(context.Context) ([]string, error) {
		return []string{"blouses", "sarees"}, nil
	}}
	categories, err := NewCatalogUseCase(repo, NewValidator()).Categories(context.Background())
	if err != nil || len(categories) != 2 {
		t.Fatalf("unexpected categories %v err=%v", categories, err)
	}
}

func TestCatalogCreateProduct(t *testing.T) {
	var stored model.Product
	repo := &testhelpers.ProductRepositoryStub{CreateFn: func(ctx context.Context, p *model.Product) (*model.Product, error) {
		stored = *p
		out := *p
		out.ID = 11
		return &out, nil
	}}
	uc := NewCatalogUseCase(repo, NewValidator())

	created, err := uc.CreateProduct(context.Background(), model.Product{
		Name:        " Silk saree ",
		Category:    " sarees ",
		Price:       decimal.RequireFromString("2499.00"),
		Stock:       3,
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.ID != 11 || stored.Name != "Silk saree" || stored.Category != "sarees" {
		t.Fatalf("unexpected product %+v stored %+v", created, stored)
	}
}

func TestCatalogProductValidation(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
		field   string
	}{
		{"missing name", model.Product{Name: "  ", Price: decimal.NewFromInt(1)}, "name"},
		{"negative price", model.Product{Name: "A", Price: decimal.NewFromInt(-1)}, "price"},
		{"negative stock", model.Product{Name: "A", Stock: -2}, "stock"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			repo := &testhelpers.ProductRepositoryStub{
				CreateFn: func(context.Context, *model.Product) (*model.Product, error) { called = true; return nil, nil },
				UpdateFn: func(context.Context, *model.Product) (*model.Product, error) { called = true; return nil, nil },
			}
			uc := NewCatalogUseCase(repo, NewValidator())

			for _, op := range []func() error{
				func() error { _, err := uc.CreateProduct(context.Background(), tt.product); return err },
				func() error { _, err := uc.UpdateProduct(context.Background(), 1, tt.product); return err },
			} {
				var validationErr *domainErrors.ValidationError
				if err := op(); !errors.As(err, &validationErr) || validationErr.Fields[tt.field] == "" {
					t.Fatalf("expected %s validation error, got %v", tt.field, err)
				}
			}
			if called {
				t.Fatal("repository must not be called for invalid product")
			}
		})
	}
}

func TestCatalogUpdateAndDelete(t *testing.T) {
	var updatedID, deletedID int64
	repo := &testhelpers.ProductRepositoryStub{
		UpdateFn: func(ctx context.Context, p *model.Product) (*model.Product, error) {
			updatedID = p.ID
			return p, nil
		},
		DeleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			if id == 404 {
				return domainErrors.ErrNotFound
			}
			return nil
		},
	}
	uc := NewCatalogUseCase(repo, NewValidator())

	if _, err := uc.UpdateProduct(context.Background(), 5, model.Product{ID: 99, Name: "Lehenga"}); err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updatedID != 5 {
		t.Fatalf("expected path id to win, got %d", updatedID)
	}
	if _, err := uc.UpdateProduct(context.Background(), 0, model.Product{Name: "Lehenga"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := uc.DeleteProduct(context.Background(), 5); err != nil || deletedID != 5 {
		t.Fatalf("unexpected delete err=%v id=%d", err, deletedID)
	}
	if err := uc.DeleteProduct(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := uc.DeleteProduct(context.Background(), -3); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
