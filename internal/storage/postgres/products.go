package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
)

type productRepository struct {
	storage *Storage
}

const productColumns = `id, name, description, price, image_url, category, stock, is_available, created_at, updated_at`

func scanProduct(row scanner) (*model.Product, error) {
	var p model.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category, &p.Stock, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
              WHERE ($1 = '' OR category = $1) AND (NOT $2 OR is_available)
              ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, filter.Category, filter.AvailableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	p, err := scanProduct(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return p, nil
}

func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT category FROM products WHERE is_available AND category <> '' ORDER BY category`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, price, image_url, category, stock, is_available)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at, updated_at`
	created := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL, product.Category, product.Stock, product.IsAvailable,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET name=$1, description=$2, price=$3, image_url=$4, category=$5, stock=$6, is_available=$7, updated_at=NOW()
                   WHERE id=$8
                   RETURNING created_at, updated_at`
	updated := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.ImageURL, product.Category, product.Stock, product.IsAvailable, product.ID,
	).Scan(&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// DecrementStock locks products in id order so concurrent confirmations
// touching the same products cannot deadlock.
func (r *productRepository) DecrementStock(ctx context.Context, changes []model.StockChange) ([]model.StockShortfall, error) {
	merged := mergeStockChanges(changes)

	var shortfalls []model.StockShortfall
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		shortfalls = shortfalls[:0]
		for _, change := range merged {
			var stock int
			err := tx.QueryRow(ctx, `SELECT stock FROM products WHERE id=$1 FOR UPDATE`, change.ProductID).Scan(&stock)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					r.storage.logger.Warn("stock decrement skipped for missing product",
						slog.Int64("product_id", change.ProductID), slog.Int("quantity", change.Quantity))
					shortfalls = append(shortfalls, model.StockShortfall{ProductID: change.ProductID, Requested: change.Quantity, Missing: true})
					continue
				}
				return fmt.Errorf("lock product %d: %w", change.ProductID, err)
			}

			applied := min(max(stock, 0), change.Quantity)
			if applied > 0 {
				if _, err := tx.Exec(ctx, `UPDATE products SET stock=stock-$1, updated_at=NOW() WHERE id=$2`, applied, change.ProductID); err != nil {
					return fmt.Errorf("decrement product %d: %w", change.ProductID, err)
				}
			}
			if applied < change.Quantity {
				r.storage.logger.Warn("stock clamped at zero",
					slog.Int64("product_id", change.ProductID),
					slog.Int("requested", change.Quantity),
					slog.Int("applied", applied))
				shortfalls = append(shortfalls, model.StockShortfall{ProductID: change.ProductID, Requested: change.Quantity, Applied: applied})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return shortfalls, nil
}

func mergeStockChanges(changes []model.StockChange) []model.StockChange {
	totals := make(map[int64]int, len(changes))
	for _, c := range changes {
		totals[c.ProductID] += c.Quantity
	}
	merged := make([]model.StockChange, 0, len(totals))
	for id, qty := range totals {
		merged = append(merged, model.StockChange{ProductID: id, Quantity: qty})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ProductID < merged[j].ProductID })
	return merged
}
