package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"github.com/polkiloo/tailorshop/internal/di"
)

func main() {
	// prices and totals go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		di.Module(),
	)

	run(ctx, app)
}
