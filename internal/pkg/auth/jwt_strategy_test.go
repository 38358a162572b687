package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/polkiloo/tailorshop/internal/domain/model"
)

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})
	principal := model.Principal{ID: 42, Role: model.RoleAdmin}

	token, err := strategy.IssueToken(principal)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	got, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if got != principal {
		t.Fatalf("expected %+v, got %+v", principal, got)
	}

	second, err := strategy.IssueToken(principal)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if second == token {
		t.Fatal("expected unique token id per issue")
	}
}

func TestJWTStrategy_Expired(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})
	issuedAt := time.Now().Add(-time.Hour)
	strategy.now = func() time.Time { return issuedAt }

	token, err := strategy.IssueToken(model.Principal{ID: 1, Role: model.RoleCustomer})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	strategy.now = time.Now
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_RejectsForeignTokens(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Minute})

	foreign, err := NewJWTStrategy("other", Options{TTL: time.Minute}).IssueToken(model.Principal{ID: 1, Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role: model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: model.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Subject:   "abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             model.RoleCustomer,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: jwtIssuer, Subject: "1"},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	cases := map[string]string{
		"garbage":         "not-a-token",
		"foreign secret":  foreign,
		"none algorithm":  noneToken,
		"numeric subject": badSubject,
		"missing expiry":  noExpiry,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestJWTStrategy_UnknownRole(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if _, err := strategy.IssueToken(model.Principal{ID: 1}); err == nil {
		t.Fatal("expected error for empty role")
	}
	if strategy.Name() != "jwt" {
		t.Fatalf("unexpected name: %s", strategy.Name())
	}
	if strategy.ttl != defaultTTL {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}
