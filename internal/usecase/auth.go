package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
	"github.com/polkiloo/tailorshop/internal/domain/repository"
	pkgAuth "github.com/polkiloo/tailorshop/internal/pkg/auth"
)

// AuthUseCase handles customer accounts, admin sign in and token management.
type AuthUseCase struct {
	customers repository.CustomerRepository
	admins    repository.AdminRepository
	hasher    pkgAuth.PasswordHasher
	tokens    pkgAuth.Strategy
	validator *Validator
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	customers repository.CustomerRepository,
	admins repository.AdminRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
	validator *Validator,
) *AuthUseCase {
	return &AuthUseCase{customers: customers, admins: admins, hasher: hasher, tokens: strategy, validator: validator}
}

// SignUp creates a customer account and returns auth token.
func (u *AuthUseCase) SignUp(ctx context.Context, reg model.Registration) (*model.Customer, string, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	reg.Phone = strings.TrimSpace(reg.Phone)
	reg.Address = strings.TrimSpace(reg.Address)

	if err := u.validator.Struct(reg); err != nil {
		return nil, "", err
	}

	// phone is a login identifier too, so it must be as unique as email
	if err := u.ensureUnused(ctx, u.customers.GetByEmail, reg.Email); err != nil {
		return nil, "", err
	}
	if err := u.ensureUnused(ctx, u.customers.GetByPhone, reg.Phone); err != nil {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(reg.Password)
	if err != nil {
		return nil, "", err
	}

	customer, err := u.customers.Create(ctx, &model.Customer{
		Name:         reg.Name,
		Email:        reg.Email,
		Phone:        reg.Phone,
		Address:      reg.Address,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(model.Principal{ID: customer.ID, Role: model.RoleCustomer})
	if err != nil {
		return nil, "", err
	}
	return customer, token, nil
}

func (u *AuthUseCase) ensureUnused(ctx context.Context, lookup func(context.Context, string) (*model.Customer, error), key string) error {
	_, err := lookup(ctx, key)
	if err == nil {
		return domainErrors.ErrAlreadyExists
	}
	if errors.Is(err, domainErrors.ErrNotFound) {
		return nil
	}
	return err
}

// Login authenticates a customer by email or phone number.
func (u *AuthUseCase) Login(ctx context.Context, identifier, password string) (*model.Customer, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	var (
		customer *model.Customer
		err      error
	)
	if strings.Contains(identifier, "@") {
		customer, err = u.customers.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		customer, err = u.customers.GetByPhone(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(customer.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(model.Principal{ID: customer.ID, Role: model.RoleCustomer})
	if err != nil {
		return nil, "", err
	}
	return customer, token, nil
}

// AdminLogin authenticates a back office operator.
func (u *AuthUseCase) AdminLogin(ctx context.Context, username, password string) (*model.Admin, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	admin, err := u.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(admin.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(model.Principal{ID: admin.ID, Role: model.RoleAdmin})
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// BootstrapAdmin creates the admin account or resets its password.
func (u *AuthUseCase) BootstrapAdmin(ctx context.Context, username, password string) (*model.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domainErrors.NewValidationError("admin", "admin username and password are required")
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return u.admins.Upsert(ctx, username, hash)
}

func (u *AuthUseCase) Profile(ctx context.Context, customerID int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, customerID)
}

// UpdateProfile applies the provided fields; at least one must be set.
func (u *AuthUseCase) UpdateProfile(ctx context.Context, customerID int64, update model.CustomerUpdate) (*model.Customer, error) {
	update.Name = trimOptional(update.Name)
	update.Phone = trimOptional(update.Phone)
	update.Address = trimOptional(update.Address)

	if update.Empty() {
		return nil, domainErrors.NewValidationError("profile", "no fields to update")
	}
	if err := u.validator.Struct(update); err != nil {
		return nil, err
	}
	return u.customers.Update(ctx, customerID, update)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// ParseToken extracts the caller identity from provided token.
func (u *AuthUseCase) ParseToken(token string) (model.Principal, error) {
	if token == "" {
		return model.Principal{}, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}
