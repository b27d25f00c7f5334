package usecase

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// ErrRetryable marks failures worth redelivering the event for.
var ErrRetryable = errors.New("retryable")

// OrderEventUsecase turns order events into push notifications.
type OrderEventUsecase interface {
	// ProcessOrderEvent returns an error wrapping ErrRetryable when the event
	// should be delivered again; any other error means the event is dropped.
	ProcessOrderEvent(ctx context.Context, event *service.OrderEvent) error
}
