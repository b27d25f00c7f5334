package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderEventType names what happened to an order.
type OrderEventType string

const (
	OrderEventPlaced        OrderEventType = "order.placed"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
)

// OrderEvent represents an order change to be processed by the notifier
type OrderEvent struct {
	RequestID    string          `json:"request_id,omitempty"` // For distributed tracing
	EventID      string          `json:"event_id"`
	Type         OrderEventType  `json:"type"`
	OrderID      string          `json:"order_id"`
	StoreID      string          `json:"store_id"`
	StoreName    string          `json:"store_name"`
	CustomerID   string          `json:"customer_id"`
	StoreOwnerID string          `json:"store_owner_id"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
