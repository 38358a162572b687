package router

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tailorshop/internal/domain/model"
	pkgAuth "github.com/polkiloo/tailorshop/internal/pkg/auth"
	"github.com/polkiloo/tailorshop/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/tailorshop/internal/test"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := testhelpers.ShopFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{ParseFn: func(token string) (model.Principal, error) {
			switch token {
			case "customer":
				return model.Principal{ID: 1, Role: model.RoleCustomer}, nil
			case "admin":
				return model.Principal{ID: 1, Role: model.RoleAdmin}, nil
			}
			return model.Principal{}, pkgAuth.ErrInvalidToken
		}},
	}
	engine := Setup(facade, logger)
	gin.SetMode(gin.TestMode)
	return engine
}

func TestSetupRoutes(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		method string
		path   string
		token  string
		body   string
		status int
	}{
		{http.MethodGet, "/healthz", "", "", http.StatusOK},
		{http.MethodGet, "/api/shop/products", "", "", http.StatusOK},
		{http.MethodGet, "/api/shop/products/1", "", "", http.StatusOK},
		{http.MethodGet, "/api/shop/categories", "", "", http.StatusOK},
		{http.MethodPost, "/api/shop/create-order", "", `{"amount":500}`, http.StatusOK},
		{http.MethodPost, "/api/shop/verify-payment", "", `{"dbOrderId":1}`, http.StatusOK},
		{http.MethodGet, "/api/shop/orders/ORD1", "", "", http.StatusOK},
		{http.MethodGet, "/api/track/ORD1", "", "", http.StatusOK},
		{http.MethodPost, "/api/auth/signup", "", `{"name":"A"}`, http.StatusCreated},
		{http.MethodPost, "/api/auth/login", "", `{"identifier":"a@b.com"}`, http.StatusOK},
		{http.MethodGet, "/api/auth/profile", "", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/auth/profile", "bogus", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/auth/profile", "admin", "", http.StatusForbidden},
		{http.MethodGet, "/api/auth/profile", "customer", "", http.StatusOK},
		{http.MethodPut, "/api/auth/profile", "customer", `{"name":"B"}`, http.StatusOK},
		{http.MethodGet, "/api/auth/orders", "customer", "", http.StatusOK},
		{http.MethodPost, "/api/admin/login", "", `{"username":"root"}`, http.StatusOK},
		{http.MethodGet, "/api/admin/orders", "", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/admin/orders", "customer", "", http.StatusForbidden},
		{http.MethodGet, "/api/admin/orders", "admin", "", http.StatusOK},
		{http.MethodGet, "/api/admin/orders/3", "admin", "", http.StatusOK},
		{http.MethodPut, "/api/admin/orders/3/status", "admin", `{"status":"shipped"}`, http.StatusOK},
		{http.MethodGet, "/api/admin/products", "admin", "", http.StatusOK},
		{http.MethodPost, "/api/admin/products", "admin", `{"name":"Saree","price":100}`, http.StatusCreated},
		{http.MethodPut, "/api/admin/products/2", "admin", `{"name":"Saree","price":100}`, http.StatusOK},
		{http.MethodDelete, "/api/admin/products/2", "admin", "", http.StatusNoContent},
		{http.MethodDelete, "/api/admin/products/2", "customer", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path+" "+tt.token, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = bytes.NewReader([]byte(tt.body))
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp := httptest.NewRecorder()
			engine.ServeHTTP(resp, req)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestSetupCompressesResponsesAndTagsRequests(t *testing.T) {
	engine := newEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/shop/products", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got headers %v", resp.Header())
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil || !bytes.Contains(data, []byte("Blouse")) {
		t.Fatalf("unexpected body %q err=%v", data, err)
	}
}

var _ handlers.ShopFacade = testhelpers.ShopFacadeStub{}
