package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ErrMalformedEvent is returned for events that can never be delivered.
var ErrMalformedEvent = errors.New("malformed order event")

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

// OrderEventServiceParams holds dependencies for OrderEventService, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

type orderEventService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewOrderEventService creates a new order event service instance
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	return &orderEventService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

type pushMessage struct {
	recipient uuid.UUID
	title     string
	body      string
	data      map[string]string
}

// ProcessOrderEvent pushes the event to the devices of whoever it concerns.
func (s *orderEventService) ProcessOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	msg, err := buildPushMessage(event)
	if err != nil {
		return err
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, msg.recipient)
	if err != nil {
		return errors.Wrap(errors.Join(usecase.ErrRetryable, err), "failed to find recipient devices")
	}
	if len(devices) == 0 {
		s.log(ctx).Debug("No active devices for recipient", slog.String("order_id", event.OrderID), slog.Any("recipient", msg.recipient))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var (
		totalSent     = 0
		totalFailed   = 0
		invalidTokens []string
	)

	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, batchInvalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, batch, msg.title, msg.body, msg.data)
		if err != nil {
			s.log(ctx).Warn("Failed to send notification batch", slog.String("order_id", event.OrderID), slog.Any("error", err))
			totalFailed += len(batch)

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		invalidTokens = append(invalidTokens, batchInvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		if err := s.deviceRepo.DeactivateByFCMTokens(ctx, invalidTokens); err != nil {
			s.log(ctx).Warn("Failed to deactivate invalid devices", slog.Int("count", len(invalidTokens)), slog.Any("error", err))
		}
	}

	s.log(ctx).Info("Order event delivered",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
	)

	return nil
}

func buildPushMessage(event *service.OrderEvent) (*pushMessage, error) {
	if event == nil {
		return nil, ErrMalformedEvent
	}

	data := map[string]string{
		"event_id": event.EventID,
		"type":     string(event.Type),
		"order_id": event.OrderID,
		"store_id": event.StoreID,
		"status":   event.Status,
	}

	switch event.Type {
	case service.OrderEventPlaced:
		ownerID, err := uuid.Parse(event.StoreOwnerID)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedEvent, "store owner id")
		}

		return &pushMessage{
			recipient: ownerID,
			title:     "Novo pedido",
			body:      fmt.Sprintf("%s recebeu um pedido de R$ %s", event.StoreName, event.Total.StringFixed(2)),
			data:      data,
		}, nil
	case service.OrderEventStatusChanged:
		customerID, err := uuid.Parse(event.CustomerID)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedEvent, "customer id")
		}

		return &pushMessage{
			recipient: customerID,
			title:     "Pedido atualizado",
			body:      fmt.Sprintf("Seu pedido em %s: %s", event.StoreName, entity.OrderStatus(event.Status).Label()),
			data:      data,
		}, nil
	default:
		return nil, errors.Wrapf(ErrMalformedEvent, "unknown event type %q", event.Type)
	}
}
