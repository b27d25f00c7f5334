package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusMismatch is returned when the stored status no longer matches the expected one.
	ErrOrderStatusMismatch = errors.New("order status changed concurrently")
)

// OrderFilter narrows an order listing. Zero values are ignored.
type OrderFilter struct {
	UserID  uuid.UUID
	StoreID uuid.UUID
}

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new order with its item snapshot.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrders lists orders matching the filter, newest first.
	FindOrders(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order from one status to another.
	// It returns ErrOrderStatusMismatch when the order is no longer in status from.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error

	// CountOrdersByStatus returns the number of orders per status.
	CountOrdersByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// SumOrderTotals returns the sum of the totals of orders in the given status.
	SumOrderTotals(ctx context.Context, status entity.OrderStatus) (decimal.Decimal, error)

	// FindRecentOrders returns the newest orders.
	FindRecentOrders(ctx context.Context, limit int) ([]*entity.Order, error)
}
