package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"forbidden", ErrForbidden},
		{"validation", ErrValidation},
		{"gateway", ErrGateway},
		{"persistence", ErrPersistence},
		{"stock update", ErrStockUpdate},
		{"invalid status", ErrInvalidStatus},
		{"invalid transition", ErrInvalidStatusTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"phone": "phone must be exactly 10 digits",
		"email": "email is invalid",
	}}

	if !stdErrors.Is(err, ErrValidation) {
		t.Fatal("expected validation error to unwrap to ErrValidation")
	}
	if got := err.Error(); got != "validation failed: email is invalid; phone must be exactly 10 digits" {
		t.Fatalf("unexpected message: %q", got)
	}

	single := NewValidationError("items", "items is required")
	if single.Fields["items"] != "items is required" {
		t.Fatalf("unexpected fields: %v", single.Fields)
	}
}

func TestGatewayError(t *testing.T) {
	cause := stdErrors.New("bad credentials")
	err := &GatewayError{StatusCode: 401, Err: cause}

	if !stdErrors.Is(err, ErrGateway) {
		t.Fatal("expected gateway error to unwrap to ErrGateway")
	}
	if !stdErrors.Is(err, cause) {
		t.Fatal("expected gateway error to unwrap to cause")
	}
	if got := err.Error(); got != "payment gateway: status 401: bad credentials" {
		t.Fatalf("unexpected message: %q", got)
	}

	noStatus := &GatewayError{Err: cause}
	if got := noStatus.Error(); got != "payment gateway: bad credentials" {
		t.Fatalf("unexpected message: %q", got)
	}

	var target *GatewayError
	if !stdErrors.As(error(err), &target) || target.StatusCode != 401 {
		t.Fatalf("expected errors.As to find gateway error, got %+v", target)
	}
}
