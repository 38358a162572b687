package postgres

import (
	"context"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
)

type customerRepository struct {
	storage *Storage
}

type adminRepository struct {
	storage *Storage
}

const customerColumns = `id, name, email, phone, address, password_hash, created_at`

func scanCustomer(row scanner) (*model.Customer, error) {
	var c model.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.PasswordHash, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	const query = `INSERT INTO customers (name, email, phone, address, password_hash)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	created := *customer
	err := r.storage.pool.QueryRow(ctx, query,
		customer.Name, customer.Email, customer.Phone, customer.Address, customer.PasswordHash,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE id=$1`, id)
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE email=$1`, email)
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	return r.getOne(ctx, `SELECT `+customerColumns+` FROM customers WHERE phone=$1`, phone)
}

func (r *customerRepository) getOne(ctx context.Context, query string, arg any) (*model.Customer, error) {
	c, err := scanCustomer(r.storage.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, mapNoRows(err)
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, update model.CustomerUpdate) (*model.Customer, error) {
	query := `UPDATE customers
              SET name=COALESCE($1, name), phone=COALESCE($2, phone), address=COALESCE($3, address)
              WHERE id=$4
              RETURNING ` + customerColumns
	c, err := scanCustomer(r.storage.pool.QueryRow(ctx, query, update.Name, update.Phone, update.Address, id))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, mapNoRows(err)
	}
	return c, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const query = `SELECT id, username, password_hash, created_at FROM admins WHERE username=$1`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return &a, nil
}

func (r *adminRepository) Upsert(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	const query = `INSERT INTO admins (username, password_hash) VALUES ($1, $2)
                   ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
                   RETURNING id, created_at`
	a := model.Admin{Username: username, PasswordHash: passwordHash}
	if err := r.storage.pool.QueryRow(ctx, query, username, passwordHash).Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}
