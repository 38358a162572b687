package dto

import "time"

// SignUpRequest describes a customer registration payload.
type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// LoginRequest accepts an email or a phone number as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest holds optional profile fields.
type UpdateProfileRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type CustomerResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type AdminResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// AuthResponse carries the issued token and the signed in account.
type AuthResponse struct {
	Token    string            `json:"token"`
	Customer *CustomerResponse `json:"customer,omitempty"`
	Admin    *AdminResponse    `json:"admin,omitempty"`
}
