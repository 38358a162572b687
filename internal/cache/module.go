package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/polkiloo/tailorshop/internal/config"
	"github.com/polkiloo/tailorshop/internal/domain/repository"
)

// Module puts the Redis catalog cache in front of the product repository
// when a Redis address is configured.
var Module = fx.Decorate(decorateProducts)

type decorateParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Products  repository.ProductRepository
}

func decorateProducts(p decorateParams) repository.ProductRepository {
	if p.Config.RedisAddr == "" {
		return p.Products
	}

	client := redis.NewClient(&redis.Options{
		Addr:     p.Config.RedisAddr,
		Password: p.Config.RedisPassword,
		DB:       p.Config.RedisDB,
	})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				p.Logger.Warn("redis unavailable, catalog served from database", slog.Any("error", err))
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewProductRepository(p.Products, client, p.Config.CatalogCacheTTL, p.Logger)
}
