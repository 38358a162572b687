package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerInfo is the shipping contact sent with a checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	State   string `json:"state"`
}

// CartItem is one line of the submitted cart.
type CartItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreateOrderRequest starts a checkout.
type CreateOrderRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	ShippingCharges decimal.Decimal `json:"shippingCharges"`
	CustomerInfo    CustomerInfo    `json:"customerInfo"`
	Items           []CartItem      `json:"items"`
}

// CreateOrderResponse hands the gateway order to the client checkout widget.
type CreateOrderResponse struct {
	OrderID     string `json:"orderId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	OrderNumber string `json:"orderNumber"`
	DBOrderID   int64  `json:"dbOrderId"`
	KeyID       string `json:"keyId"`
}

// VerifyPaymentRequest is the callback payload of the checkout widget.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	DBOrderID         int64  `json:"dbOrderId"`
}

type VerifyPaymentResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderNumber string `json:"orderNumber,omitempty"`
}

type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductRequest creates or replaces a catalog entry.
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	IsAvailable *bool           `json:"is_available"`
}

type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type TimelineStepResponse struct {
	Status      string     `json:"status"`
	Label       string     `json:"label"`
	Completed   bool       `json:"completed"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
}

// OrderResponse mirrors an order row. Items and timeline are filled for detail views.
type OrderResponse struct {
	ID               int64                  `json:"id"`
	OrderNumber      string                 `json:"order_number"`
	CustomerID       *int64                 `json:"customer_id"`
	CustomerName     string                 `json:"customer_name"`
	CustomerEmail    string                 `json:"customer_email"`
	CustomerPhone    string                 `json:"customer_phone"`
	CustomerAddress  string                 `json:"customer_address"`
	CustomerState    string                 `json:"customer_state"`
	Subtotal         decimal.Decimal        `json:"subtotal"`
	ShippingCharges  decimal.Decimal        `json:"shipping_charges"`
	TotalAmount      decimal.Decimal        `json:"total_amount"`
	PaymentStatus    string                 `json:"payment_status"`
	OrderStatus      string                 `json:"order_status"`
	GatewayOrderID   string                 `json:"razorpay_order_id,omitempty"`
	GatewayPaymentID *string                `json:"razorpay_payment_id,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	Items            []OrderItemResponse    `json:"items,omitempty"`
	Timeline         []TimelineStepResponse `json:"timeline,omitempty"`
}

// TrackResponse is returned by the public tracking endpoint.
type TrackResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists rejected fields with messages.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// TrackErrorResponse is returned by the tracking endpoint on failure.
type TrackErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
