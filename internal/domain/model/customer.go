package model

import "time"

// Customer is a registered shop account.
type Customer struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Address      string
	PasswordHash string
	CreatedAt    time.Time
}

// Registration is the sign-up form of a new customer.
type Registration struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required,phone10"`
	Password string `validate:"required,min=6"`
	Address  string
}

// CustomerUpdate carries optional profile changes.
type CustomerUpdate struct {
	Name    *string `validate:"omitempty,min=1"`
	Phone   *string `validate:"omitempty,phone10"`
	Address *string
}

// Empty reports whether no field is set.
func (u CustomerUpdate) Empty() bool {
	return u.Name == nil && u.Phone == nil && u.Address == nil
}

// Admin is a back office operator.
type Admin struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Role distinguishes token holders.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Principal identifies the authenticated caller.
type Principal struct {
	ID   int64
	Role Role
}
