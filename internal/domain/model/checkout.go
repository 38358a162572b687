package model

import "github.com/shopspring/decimal"

// CustomerInfo is the shipping contact captured at checkout.
type CustomerInfo struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"required,phone10"`
	Address string `validate:"required"`
	State   string
}

// CheckoutItem is a cart entry submitted for checkout.
type CheckoutItem struct {
	ProductID int64           `validate:"gt=0"`
	Name      string          `validate:"required"`
	Quantity  int             `validate:"gte=1"`
	Price     decimal.Decimal `validate:"gte=0"`
}

// CheckoutRequest holds everything needed to open a payment session.
type CheckoutRequest struct {
	Amount          decimal.Decimal `validate:"gt=0"`
	Subtotal        decimal.Decimal `validate:"gte=0"`
	ShippingCharges decimal.Decimal `validate:"gte=0"`
	Customer        CustomerInfo
	Items           []CheckoutItem `validate:"required,min=1,dive"`
	CustomerID      *int64
}

// CheckoutSession is returned to the client to start the gateway payment flow.
type CheckoutSession struct {
	OrderID        int64
	GatewayOrderID string
	OrderNumber    string
	Amount         int64
	Currency       string
	KeyID          string
}

// GatewayOrder is the remote payment intent issued by the gateway.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

// PaymentConfirmation is the payload the gateway hands back after payment.
type PaymentConfirmation struct {
	GatewayOrderID   string `validate:"required"`
	GatewayPaymentID string `validate:"required"`
	Signature        string `validate:"required"`
	OrderID          int64  `validate:"gt=0"`
}

// PaymentVerification reports the outcome of a confirmation.
type PaymentVerification struct {
	Verified   bool
	Duplicate  bool
	Order      *Order
	Shortfalls []StockShortfall
}
