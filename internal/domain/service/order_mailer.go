package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderMailer sends transactional emails about orders.
type OrderMailer interface {
	// SendNewOrder notifies a store that an order was placed.
	SendNewOrder(ctx context.Context, to string, order *entity.Order) error
}
