package impl

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderEventServiceFixtures struct {
	service         usecase.OrderEventUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestOrderEventService(t *testing.T) orderEventServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	service := NewOrderEventService(OrderEventServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	})

	return orderEventServiceFixtures{
		service:         service,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func newOrderEvent(eventType service.OrderEventType) *service.OrderEvent {
	return &service.OrderEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		OrderID:      uuid.NewString(),
		StoreID:      uuid.NewString(),
		StoreName:    "Padaria Central",
		CustomerID:   uuid.NewString(),
		StoreOwnerID: uuid.NewString(),
		Status:       string(entity.OrderStatusPending),
		Total:        decimal.RequireFromString("45"),
	}
}

func devicesWithTokens(userID uuid.UUID, tokens ...string) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, len(tokens))
	for _, token := range tokens {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: token, IsActive: true})
	}

	return devices
}

func TestOrderEventService_Placed_NotifiesStoreOwner(t *testing.T) {
	fx := createTestOrderEventService(t)

	ctx := context.Background()
	event := newOrderEvent(service.OrderEventPlaced)
	ownerID := uuid.MustParse(event.StoreOwnerID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, ownerID).Return(devicesWithTokens(ownerID, "token-a", "token-b"), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, "Novo pedido", "Padaria Central recebeu um pedido de R$ 45.00",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["order_id"] == event.OrderID && data["type"] == string(service.OrderEventPlaced)
			})).
		Return(2, 0, nil, nil)

	require.NoError(t, fx.service.ProcessOrderEvent(ctx, event))
}

func TestOrderEventService_StatusChanged_NotifiesCustomer(t *testing.T) {
	fx := createTestOrderEventService(t)

	ctx := context.Background()
	event := newOrderEvent(service.OrderEventStatusChanged)
	event.Status = string(entity.OrderStatusDelivering)
	customerID := uuid.MustParse(event.CustomerID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, customerID).Return(devicesWithTokens(customerID, "token-c"), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-c"}, "Pedido atualizado", "Seu pedido em Padaria Central: Saiu para entrega", mock.Anything).
		Return(1, 0, nil, nil)

	require.NoError(t, fx.service.ProcessOrderEvent(ctx, event))
}

func TestOrderEventService_NoDevices(t *testing.T) {
	fx := createTestOrderEventService(t)

	ctx := context.Background()
	event := newOrderEvent(service.OrderEventPlaced)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, uuid.MustParse(event.StoreOwnerID)).Return(nil, nil)

	require.NoError(t, fx.service.ProcessOrderEvent(ctx, event))
	fx.notificationSvc.AssertNotCalled(t, "SendBatchNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderEventService_DeactivatesInvalidTokens(t *testing.T) {
	fx := createTestOrderEventService(t)

	ctx := context.Background()
	event := newOrderEvent(service.OrderEventPlaced)
	ownerID := uuid.MustParse(event.StoreOwnerID)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, ownerID).Return(devicesWithTokens(ownerID, "good", "stale"), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 1, []string{"stale"}, nil)
	fx.deviceRepo.EXPECT().DeactivateByFCMTokens(ctx, []string{"stale"}).Return(errors.New("db down"))

	// A failed cleanup does not fail the delivery.
	require.NoError(t, fx.service.ProcessOrderEvent(ctx, event))
}

func TestOrderEventService_SendsInBatches(t *testing.T) {
	fx := createTestOrderEventService(t)

	ctx := context.Background()
	event := newOrderEvent(service.OrderEventPlaced)
	ownerID := uuid.MustParse(event.StoreOwnerID)

	tokens := make([]string, firebaseBatchSize+3)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, ownerID).Return(devicesWithTokens(ownerID, tokens...), nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, tokens[:firebaseBatchSize], mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).
		Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, tokens[firebaseBatchSize:], mock.Anything, mock.Anything, mock.Anything).
		Return(3, 0, nil, nil).
		Once()

	require.NoError(t, fx.service.ProcessOrderEvent(ctx, event))
}

func TestOrderEventService_RepositoryFailureIsRetryable(t *testing.T) {
	fx := createTestOrderEventService(t)

	ctx := context.Background()
	event := newOrderEvent(service.OrderEventStatusChanged)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, mock.AnythingOfType("uuid.UUID")).Return(nil, errors.New("connection refused"))

	err := fx.service.ProcessOrderEvent(ctx, event)
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrRetryable)
}

func TestOrderEventService_MalformedEvents(t *testing.T) {
	tests := []struct {
		name  string
		event func() *service.OrderEvent
	}{
		{
			name:  "nil event",
			event: func() *service.OrderEvent { return nil },
		},
		{
			name: "unknown type",
			event: func() *service.OrderEvent {
				return newOrderEvent("order.refunded")
			},
		},
		{
			name: "placed without owner",
			event: func() *service.OrderEvent {
				event := newOrderEvent(service.OrderEventPlaced)
				event.StoreOwnerID = ""

				return event
			},
		},
		{
			name: "status change without customer",
			event: func() *service.OrderEvent {
				event := newOrderEvent(service.OrderEventStatusChanged)
				event.CustomerID = "not-a-uuid"

				return event
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderEventService(t)

			err := fx.service.ProcessOrderEvent(context.Background(), tt.event())
			assert.ErrorIs(t, err, ErrMalformedEvent)
			assert.NotErrorIs(t, err, usecase.ErrRetryable)
		})
	}
}
