package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/domain/repository"
)

const categoriesKey = "products:categories"

// redisClient is the subset of *redis.Client used for caching.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// ProductRepository serves catalog reads from Redis and invalidates
// entries on every write.
type ProductRepository struct {
	next   repository.ProductRepository
	client redisClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewProductRepository wraps next with a read-through cache.
func NewProductRepository(next repository.ProductRepository, client redisClient, ttl time.Duration, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func (r *ProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return r.next.List(ctx, filter)
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	key := productKey(id)
	var cached model.Product
	if r.load(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, product)
	return product, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	var cached []string
	if r.load(ctx, categoriesKey, &cached) {
		return cached, nil
	}

	categories, err := r.next.Categories(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, categoriesKey, categories)
	return categories, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	created, err := r.next.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, categoriesKey)
	return created, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	updated, err := r.next.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, productKey(product.ID), categoriesKey)
	return updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, productKey(id), categoriesKey)
	return nil
}

func (r *ProductRepository) DecrementStock(ctx context.Context, changes []model.StockChange) ([]model.StockShortfall, error) {
	shortfalls, err := r.next.DecrementStock(ctx, changes)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(changes))
	for _, c := range changes {
		keys = append(keys, productKey(c.ProductID))
	}
	r.invalidate(ctx, keys...)
	return shortfalls, nil
}

func (r *ProductRepository) load(ctx context.Context, key string, dest any) bool {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		r.logger.Warn("cache entry corrupted", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (r *ProductRepository) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Warn("cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (r *ProductRepository) invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warn("cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}
