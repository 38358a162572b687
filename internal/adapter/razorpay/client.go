package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/sony/gobreaker"

	domainErrors "github.com/polkiloo/tailorshop/internal/domain/errors"
	"github.com/polkiloo/tailorshop/internal/domain/model"
)

// Client exposes the payment gateway operations used at checkout.
type Client interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*model.GatewayOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
	KeyID() string
}

// HTTPClient implements Client over the Razorpay REST API.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  []byte
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewHTTPClient creates gateway client with request timeout and circuit breaker.
func NewHTTPClient(baseURL, keyID, keySecret string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	if keyID == "" || keySecret == "" {
		return nil, fmt.Errorf("gateway credentials must be provided")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        "razorpay",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	}

	return &HTTPClient{
		baseURL:    parsed,
		keyID:      keyID,
		keySecret:  []byte(keySecret),
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
	}, nil
}

// isBreakerSuccess keeps rejected requests (4xx) from opening the circuit;
// only transport failures and gateway-side errors count.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var gwErr *domainErrors.GatewayError
	if errors.As(err, &gwErr) && gwErr.StatusCode >= 400 && gwErr.StatusCode < 500 {
		return true
	}
	return false
}

func (c *HTTPClient) KeyID() string {
	return c.keyID
}

// CreateOrder mints a remote order for amount in minor currency units.
func (c *HTTPClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*model.GatewayOrder, error) {
	order, err := executeWithBreaker(c.breaker, func() (*model.GatewayOrder, error) {
		return c.createOrder(ctx, amount, currency, receipt)
	})
	if err != nil {
		var gwErr *domainErrors.GatewayError
		if errors.As(err, &gwErr) {
			return nil, err
		}
		return nil, &domainErrors.GatewayError{Err: err}
	}
	return order, nil
}

func (c *HTTPClient) createOrder(ctx context.Context, amount int64, currency, receipt string) (*model.GatewayOrder, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/orders")

	body, err := json.Marshal(createOrderRequest{Amount: amount, Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.keyID, string(c.keySecret))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domainErrors.GatewayError{Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainErrors.GatewayError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("gateway order request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("receipt", receipt),
			slog.String("body", string(payload)))
		return nil, &domainErrors.GatewayError{StatusCode: resp.StatusCode, Err: describeError(resp.Status, payload)}
	}

	var data orderResponse
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, &domainErrors.GatewayError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode order: %w", err)}
	}
	if data.ID == "" {
		return nil, &domainErrors.GatewayError{StatusCode: resp.StatusCode, Err: errors.New("order id missing in response")}
	}

	return &model.GatewayOrder{ID: data.ID, Amount: data.Amount, Currency: data.Currency, Receipt: data.Receipt}, nil
}

func describeError(status string, payload []byte) error {
	var data errorResponse
	if err := json.Unmarshal(payload, &data); err == nil && data.Error.Description != "" {
		return fmt.Errorf("%s: %s", data.Error.Code, data.Error.Description)
	}
	return errors.New(status)
}

// VerifySignature checks the checkout callback signature in constant time.
func (c *HTTPClient) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	expected := Sign(c.keySecret, gatewayOrderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Sign returns the hex HMAC-SHA256 of "orderID|paymentID" under secret.
func Sign(secret []byte, gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func executeWithBreaker[T any](cb *gobreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}
