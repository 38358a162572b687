package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry.
type Product struct {
	ID          int64
	Name        string          `validate:"required"`
	Description string
	Price       decimal.Decimal `validate:"gte=0"`
	ImageURL    string
	Category    string
	Stock       int `validate:"gte=0"`
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category      string
	AvailableOnly bool
}

// StockChange requests removal of quantity units from a product.
type StockChange struct {
	ProductID int64
	Quantity  int
}

// StockShortfall records a decrement that could not be applied in full.
type StockShortfall struct {
	ProductID int64
	Requested int
	Applied   int
	Missing   bool
}
