package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/tailorshop/internal/adapter/razorpay"
	"github.com/polkiloo/tailorshop/internal/app"
	"github.com/polkiloo/tailorshop/internal/cache"
	"github.com/polkiloo/tailorshop/internal/config"
	"github.com/polkiloo/tailorshop/internal/logger"
	"github.com/polkiloo/tailorshop/internal/pkg/auth"
	"github.com/polkiloo/tailorshop/internal/server/http/handlers"
	"github.com/polkiloo/tailorshop/internal/server/http/router"
	"github.com/polkiloo/tailorshop/internal/storage/postgres"
	"github.com/polkiloo/tailorshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		razorpay.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
