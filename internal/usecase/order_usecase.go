package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderUsecase covers checkout and the fulfillment workflow.
type OrderUsecase interface {
	Checkout(ctx context.Context, caller *entity.CallerIdentity, input *CheckoutInput) (*entity.OrderView, error)
	GetOrder(ctx context.Context, caller *entity.CallerIdentity, orderID uuid.UUID) (*entity.OrderView, error)
	ListOrders(ctx context.Context, caller *entity.CallerIdentity, query OrderQuery) ([]*entity.OrderView, error)

	// UpdateStatus advances an order to target. Only the store owner may do it,
	// and target must be the single forward step of the current status.
	UpdateStatus(ctx context.Context, caller *entity.CallerIdentity, orderID uuid.UUID, target entity.OrderStatus) (*entity.OrderView, error)
}

// OrderQuery selects which orders to list.
type OrderQuery struct {
	StoreID uuid.UUID
	AsStore bool
}

// CheckoutItemInput is one line of the item snapshot sent at checkout.
type CheckoutItemInput struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// CheckoutInput defines the data required to place an order.
type CheckoutInput struct {
	StoreID           uuid.UUID           `json:"storeId"`
	Items             []CheckoutItemInput `json:"items"`
	Subtotal          decimal.Decimal     `json:"subtotal"`
	DeliveryFee       decimal.Decimal     `json:"deliveryFee"`
	Total             decimal.Decimal     `json:"total"`
	CustomerName      string              `json:"customerName"`
	CustomerPhone     string              `json:"customerPhone"`
	PaymentMethod     string              `json:"paymentMethod"`
	NeedsChange       bool                `json:"needsChange"`
	ChangeAmount      *decimal.Decimal    `json:"changeAmount"`
	DeliveryAddressID *uuid.UUID          `json:"deliveryAddressId"`
}
