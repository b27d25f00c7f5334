package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Next(t *testing.T) {
	tests := []struct {
		from   OrderStatus
		to     OrderStatus
		label  string
		exists bool
	}{
		{from: OrderStatusPending, to: OrderStatusConfirmed, label: "Receive Order", exists: true},
		{from: OrderStatusConfirmed, to: OrderStatusPreparing, label: "Confirm Payment Method", exists: true},
		{from: OrderStatusPreparing, to: OrderStatusDelivering, label: "Confirm Out-for-Delivery", exists: true},
		{from: OrderStatusDelivering, to: OrderStatusCompleted, label: "Finalize Order", exists: true},
		{from: OrderStatusCompleted},
		{from: OrderStatusCancelled},
		{from: OrderStatus("shipped")},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			to, label, ok := tt.from.Next()
			assert.Equal(t, tt.exists, ok)
			assert.Equal(t, tt.to, to)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusDelivering, OrderStatusCompleted, OrderStatusCancelled,
	}

	allowed := map[OrderStatus]OrderStatus{
		OrderStatusPending:    OrderStatusConfirmed,
		OrderStatusConfirmed:  OrderStatusPreparing,
		OrderStatusPreparing:  OrderStatusDelivering,
		OrderStatusDelivering: OrderStatusCompleted,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from] == to
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusDelivering.IsTerminal())
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, OrderStatusPreparing.IsValid())
	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("PENDING").IsValid())
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "Pendente", OrderStatusPending.Label())
	assert.Equal(t, "Saiu para entrega", OrderStatusDelivering.Label())
	assert.Equal(t, "Cancelado", OrderStatusCancelled.Label())
	assert.Equal(t, "unknown", OrderStatus("unknown").Label())
}
