package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the immutable snapshot of a checkout. Only Status changes after creation.
type Order struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"userId"`
	StoreID         uuid.UUID        `json:"storeId"`
	StoreName       string           `json:"storeName"`
	StorePhone      string           `json:"storePhone"`
	Items           []OrderItem      `json:"items"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	DeliveryFee     decimal.Decimal  `json:"deliveryFee"`
	Total           decimal.Decimal  `json:"total"`
	Status          OrderStatus      `json:"status"`
	PaymentMethod   string           `json:"paymentMethod"`
	NeedsChange     bool             `json:"needsChange"`
	ChangeAmount    *decimal.Decimal `json:"changeAmount"`
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	DeliveryAddress string           `json:"deliveryAddress"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// OrderItem is the product snapshot taken at checkout.
type OrderItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// OrderAction is the single status change currently available on an order.
type OrderAction struct {
	Status OrderStatus `json:"status"`
	Label  string      `json:"label"`
}

// OrderView is an order annotated with its next available action.
type OrderView struct {
	*Order
	AvailableAction *OrderAction `json:"availableAction"`
}

// NewOrderView annotates order with the action its current status allows.
func NewOrderView(order *Order) *OrderView {
	view := &OrderView{Order: order}
	if next, label, ok := order.Status.Next(); ok {
		view.AvailableAction = &OrderAction{Status: next, Label: label}
	}

	return view
}
