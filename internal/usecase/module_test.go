package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/tailorshop/internal/config"
	testhelpers "github.com/polkiloo/tailorshop/internal/test"
)

func TestRegisterAdminBootstrap(t *testing.T) {
	admins := &testhelpers.AdminRepositoryStub{}
	auth := NewAuthUseCase(testhelpers.NewCustomerRepositoryStub(), admins, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, NewValidator())

	lc := fxtest.NewLifecycle(t)
	registerAdminBootstrap(bootstrapParams{
		Lifecycle: lc,
		Config:    &config.Config{AdminUsername: "root", AdminPassword: "pw"},
		Auth:      auth,
		Logger:    discardLogger(),
	})

	if err := lc.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if admin := admins.Admins["root"]; admin == nil || admin.PasswordHash != "hash:pw" {
		t.Fatalf("expected bootstrapped admin, got %+v", admins.Admins)
	}
	if err := lc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}

func TestRegisterAdminBootstrapSkippedWithoutConfig(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	registerAdminBootstrap(bootstrapParams{
		Lifecycle: recorder,
		Config:    &config.Config{},
		Logger:    discardLogger(),
	})
	if len(recorder.Hooks) != 0 {
		t.Fatalf("expected no hooks, got %d", len(recorder.Hooks))
	}
}

func TestRegisterAdminBootstrapFailsStart(t *testing.T) {
	boom := errors.New("db down")
	admins := &testhelpers.AdminRepositoryStub{Err: boom}
	auth := NewAuthUseCase(testhelpers.NewCustomerRepositoryStub(), admins, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, NewValidator())

	recorder := &testhelpers.LifecycleRecorder{}
	registerAdminBootstrap(bootstrapParams{
		Lifecycle: recorder,
		Config:    &config.Config{AdminUsername: "root", AdminPassword: "pw"},
		Auth:      auth,
		Logger:    discardLogger(),
	})
	if err := recorder.Start(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected start to fail, got %v", err)
	}
}
