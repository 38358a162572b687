package usecase

import (
	"testing"
	"time"

	"github.com/polkiloo/tailorshop/internal/domain/model"
)

func TestDeriveTimeline(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	tests := []struct {
		name      string
		payment   model.PaymentStatus
		status    model.OrderStatus
		completed [5]bool
	}{
		{name: "fresh pending", payment: model.PaymentStatusPending, status: model.OrderStatusPending, completed: [5]bool{true, false, false, false, false}},
		{name: "failed payment", payment: model.PaymentStatusFailed, status: model.OrderStatusPending, completed: [5]bool{true, false, false, false, false}},
		{name: "confirmed", payment: model.PaymentStatusCompleted, status: model.OrderStatusConfirmed, completed: [5]bool{true, true, false, false, false}},
		{name: "paid processing", payment: model.PaymentStatusPaid, status: model.OrderStatusProcessing, completed: [5]bool{true, true, true, false, false}},
		{name: "shipped", payment: model.PaymentStatusPaid, status: model.OrderStatusShipped, completed: [5]bool{true, true, true, true, false}},
		{name: "delivered", payment: model.PaymentStatusCompleted, status: model.OrderStatusDelivered, completed: [5]bool{true, true, true, true, true}},
		{name: "cancelled", payment: model.PaymentStatusCompleted, status: model.OrderStatusCancelled, completed: [5]bool{true, true, false, false, false}},
		{name: "skipped to delivered unpaid", payment: model.PaymentStatusPending, status: model.OrderStatusDelivered, completed: [5]bool{true, false, true, true, true}},
	}

	keys := []string{StepPlaced, StepPayment, StepProcessing, StepShipped, StepDelivered}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := model.Order{PaymentStatus: tt.payment, OrderStatus: tt.status, CreatedAt: created, UpdatedAt: updated}
			steps := DeriveTimeline(order)
			if len(steps) != 5 {
				t.Fatalf("expected 5 steps, got %d", len(steps))
			}
			for i, step := range steps {
				if step.Status != keys[i] {
					t.Fatalf("step %d: expected %s, got %s", i, keys[i], step.Status)
				}
				if step.Completed != tt.completed[i] {
					t.Fatalf("step %s: expected completed=%v", step.Status, tt.completed[i])
				}
				if !step.Completed {
					if step.Date != nil {
						t.Fatalf("step %s: open step must have no date", step.Status)
					}
					continue
				}
				want := updated
				if i < 2 {
					want = created
				}
				if step.Date == nil || !step.Date.Equal(want) {
					t.Fatalf("step %s: expected date %v, got %v", step.Status, want, step.Date)
				}
			}
		})
	}
}

func TestDeriveTimelineLabels(t *testing.T) {
	pending := DeriveTimeline(model.Order{PaymentStatus: model.PaymentStatusPending, OrderStatus: model.OrderStatusPending})
	if pending[1].Label != "Payment Pending" || pending[1].Description != "Waiting for payment confirmation" {
		t.Fatalf("unexpected pending payment step %+v", pending[1])
	}
	if pending[4].Description != "Estimated delivery in 3-5 days" {
		t.Fatalf("unexpected delivery step %+v", pending[4])
	}

	paid := DeriveTimeline(model.Order{PaymentStatus: model.PaymentStatusCompleted, OrderStatus: model.OrderStatusConfirmed})
	if paid[1].Label != "Payment Confirmed" || paid[1].Description != "Payment has been verified" {
		t.Fatalf("unexpected confirmed payment step %+v", paid[1])
	}
}
