package usecase

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/tailorshop/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewValidator,
		NewAuthUseCase,
		NewOrderUseCase,
		NewCatalogUseCase,
	),
	fx.Invoke(registerAdminBootstrap),
)

type bootstrapParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Auth      *AuthUseCase
	Logger    *slog.Logger
}

// registerAdminBootstrap seeds the configured admin account on start.
func registerAdminBootstrap(p bootstrapParams) {
	if p.Config.AdminUsername == "" {
		return
	}
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			admin, err := p.Auth.BootstrapAdmin(ctx, p.Config.AdminUsername, p.Config.AdminPassword)
			if err != nil {
				return err
			}
			p.Logger.Info("admin account ready", slog.String("username", admin.Username))
			return nil
		},
	})
}
