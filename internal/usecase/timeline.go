package usecase

import (
	"time"

	"github.com/polkiloo/tailorshop/internal/domain/model"
)

// Timeline step keys in display order.
const (
	StepPlaced     = "placed"
	StepPayment    = "payment"
	StepProcessing = "processing"
	StepShipped    = "shipped"
	StepDelivered  = "delivered"
)

// DeriveTimeline projects order statuses onto the five tracking milestones.
// Each step is evaluated on its own, so an order that skipped a status still
// shows every earlier fulfillment step as completed.
func DeriveTimeline(order model.Order) []model.TimelineStep {
	paid := order.PaymentStatus.Succeeded()
	processing := order.OrderStatus == model.OrderStatusProcessing ||
		order.OrderStatus == model.OrderStatusShipped ||
		order.OrderStatus == model.OrderStatusDelivered
	shipped := order.OrderStatus == model.OrderStatusShipped ||
		order.OrderStatus == model.OrderStatusDelivered
	delivered := order.OrderStatus == model.OrderStatusDelivered

	steps := []model.TimelineStep{
		{
			Status:      StepPlaced,
			Label:       "Order Placed",
			Completed:   true,
			Date:        timeRef(order.CreatedAt),
			Description: "Your order has been received",
		},
		step(StepPayment, paid, order.CreatedAt,
			"Payment Confirmed", "Payment has been verified",
			"Payment Pending", "Waiting for payment confirmation"),
		step(StepProcessing, processing, order.UpdatedAt,
			"Processing", "Your order is being prepared",
			"Processing", "Order will be processed after payment"),
		step(StepShipped, shipped, order.UpdatedAt,
			"Shipped", "Your order is on the way",
			"Shipped", "Order will be shipped soon"),
		step(StepDelivered, delivered, order.UpdatedAt,
			"Delivered", "Order has been delivered",
			"Delivered", "Estimated delivery in 3-5 days"),
	}
	return steps
}

func step(status string, completed bool, at time.Time, doneLabel, doneText, openLabel, openText string) model.TimelineStep {
	if completed {
		return model.TimelineStep{Status: status, Label: doneLabel, Completed: true, Date: timeRef(at), Description: doneText}
	}
	return model.TimelineStep{Status: status, Label: openLabel, Description: openText}
}

func timeRef(t time.Time) *time.Time {
	return &t
}
