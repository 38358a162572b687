package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/polkiloo/tailorshop/internal/adapter/razorpay"
	"github.com/polkiloo/tailorshop/internal/domain/model"
)

// GatewaySecret signs callbacks accepted by GatewayStub by default.
const GatewaySecret = "test-secret"

// GatewayOrderCall stores arguments of CreateOrder invocations.
type GatewayOrderCall struct {
	Amount   int64
	Currency string
	Receipt  string
}

// GatewayStub simulates the payment gateway.
type GatewayStub struct {
	CreateOrderFn func(context.Context, int64, string, string) (*model.GatewayOrder, error)
	VerifyFn      func(string, string, string) bool
	Key           string

	Calls []GatewayOrderCall
	mu    sync.Mutex
}

// CreateOrder records the call and returns a gateway order echoing arguments.
func (s *GatewayStub) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*model.GatewayOrder, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, GatewayOrderCall{Amount: amount, Currency: currency, Receipt: receipt})
	n := len(s.Calls)
	s.mu.Unlock()
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, amount, currency, receipt)
	}
	return &model.GatewayOrder{ID: fmt.Sprintf("order_%d", n), Amount: amount, Currency: currency, Receipt: receipt}, nil
}

// VerifySignature checks signature against GatewaySecret unless overridden.
func (s *GatewayStub) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	if s.VerifyFn != nil {
		return s.VerifyFn(gatewayOrderID, paymentID, signature)
	}
	return razorpay.Sign([]byte(GatewaySecret), gatewayOrderID, paymentID) == signature
}

// KeyID returns configured public key id.
func (s *GatewayStub) KeyID() string {
	if s.Key != "" {
		return s.Key
	}
	return "rzp_test"
}

// CallCount returns the number of CreateOrder calls.
func (s *GatewayStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}

// SignPayment returns a signature GatewayStub accepts by default.
func SignPayment(gatewayOrderID, paymentID string) string {
	return razorpay.Sign([]byte(GatewaySecret), gatewayOrderID, paymentID)
}

var _ razorpay.Client = (*GatewayStub)(nil)
