package service

import (
	"context"
	"time"
)

// OrderPaidEvent announces that a checkout settled an order
type OrderPaidEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`             // Provider event ID
	BusinessID string    `json:"business_id"`
	OrderID    string    `json:"order_id"`
	SessionID  string    `json:"session_id"`
	PaidAt     time.Time `json:"paid_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPaid publishes an order-paid event for downstream consumers
	PublishOrderPaid(ctx context.Context, event *OrderPaidEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
