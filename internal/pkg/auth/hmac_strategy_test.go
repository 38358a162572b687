package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/polkiloo/tailorshop/internal/domain/model"
)

func encodeHMAC(s *HMACStrategy, payload string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(payload + ":" + s.sign(payload)))
}

func TestNewHMACStrategy_DefaultTTL(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != defaultTTL {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}

	custom := NewHMACStrategy("secret", Options{TTL: 2 * time.Hour})
	if custom.ttl != 2*time.Hour {
		t.Fatalf("unexpected ttl: %s", custom.ttl)
	}
}

func TestHMACStrategy_IssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})

	for _, principal := range []model.Principal{
		{ID: 42, Role: model.RoleCustomer},
		{ID: 1, Role: model.RoleAdmin},
	} {
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
	}

	if _, err := strategy.IssueToken(model.Principal{ID: 1, Role: "root"}); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestHMACStrategy_RejectsMalformedTokens(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	future := time.Now().Add(time.Minute).Unix()

	cases := map[string]string{
		"not base64":   "***",
		"parts":        base64.RawURLEncoding.EncodeToString([]byte("only:two")),
		"user id":      encodeHMAC(strategy, fmt.Sprintf("customer:abc:%d", future)),
		"expiry":       encodeHMAC(strategy, "customer:10:not-a-number"),
		"expired":      encodeHMAC(strategy, fmt.Sprintf("customer:10:%d", time.Now().Add(-time.Minute).Unix())),
		"unknown role": encodeHMAC(strategy, fmt.Sprintf("root:10:%d", future)),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestHMACStrategy_RoleEscalationIsDetected(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(model.Principal{ID: 7, Role: model.RoleCustomer})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	parts := strings.Split(string(raw), ":")
	parts[0] = string(model.RoleAdmin)
	tampered := base64.RawURLEncoding.EncodeToString([]byte(strings.Join(parts, ":")))
	if _, err := strategy.ParseToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	other := NewHMACStrategy("other-secret", Options{TTL: time.Minute})
	if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestHMACStrategy_Name(t *testing.T) {
	if NewHMACStrategy("secret", Options{}).Name() != "hmac" {
		t.Fatal("unexpected name")
	}
}
