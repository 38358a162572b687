package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus describes the outcome of a single payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Succeeded reports whether the payment has been confirmed.
func (s PaymentStatus) Succeeded() bool {
	return s == PaymentStatusPaid || s == PaymentStatusCompleted
}

// OrderStatus describes fulfillment progress.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known fulfillment status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the order must not leave s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Order is a checkout record with a snapshot of the customer at order time.
type Order struct {
	ID               int64
	OrderNumber      string
	CustomerID       *int64
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	CustomerAddress  string
	CustomerState    string
	Subtotal         decimal.Decimal
	ShippingCharges  decimal.Decimal
	TotalAmount      decimal.Decimal
	PaymentStatus    PaymentStatus
	OrderStatus      OrderStatus
	GatewayOrderID   string
	GatewayPaymentID *string
	GatewaySignature *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItem is a line of an order captured at checkout.
type OrderItem struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// LineTotal returns price multiplied by quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderDetails bundles an order with its items and derived timeline.
type OrderDetails struct {
	Order    Order
	Items    []OrderItem
	Timeline []TimelineStep
}
