package repository

import (
	"context"

	"github.com/polkiloo/tailorshop/internal/domain/model"
)

// CustomerRepository describes persistence of shop accounts.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*model.Customer, error)
	Update(ctx context.Context, id int64, update model.CustomerUpdate) (*model.Customer, error)
}

// AdminRepository describes persistence of back office operators.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
	Upsert(ctx context.Context, username, passwordHash string) (*model.Admin, error)
}
