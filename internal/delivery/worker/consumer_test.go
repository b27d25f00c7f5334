package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestConsumer(t *testing.T) (*kafkaConsumer, *mockUC.MockOrderEventUsecase) {
	orderEventUC := mockUC.NewMockOrderEventUsecase(t)

	return &kafkaConsumer{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		orderEventUC: orderEventUC,
	}, orderEventUC
}

func eventMessage(t *testing.T, event *service.OrderEvent, headers ...kafka.Header) kafka.Message {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	return kafka.Message{Offset: 7, Value: value, Headers: headers}
}

func TestKafkaConsumer_Handle(t *testing.T) {
	event := &service.OrderEvent{EventID: "evt-1", Type: service.OrderEventPlaced}

	tests := []struct {
		name      string
		err       error
		wantRetry bool
	}{
		{name: "delivered"},
		{name: "retryable", err: errors.Join(usecase.ErrRetryable, errors.New("db down")), wantRetry: true},
		{name: "permanent failure is dropped", err: errors.New("malformed order event")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, orderEventUC := createTestConsumer(t)

			orderEventUC.EXPECT().ProcessOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).Return(tt.err)

			err := consumer.handle(context.Background(), eventMessage(t, event))
			if tt.wantRetry {
				assert.ErrorIs(t, err, usecase.ErrRetryable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKafkaConsumer_Handle_MalformedValueIsDropped(t *testing.T) {
	consumer, orderEventUC := createTestConsumer(t)

	err := consumer.handle(context.Background(), kafka.Message{Value: []byte("{broken")})
	require.NoError(t, err)
	orderEventUC.AssertNotCalled(t, "ProcessOrderEvent", mock.Anything, mock.Anything)
}

func TestKafkaConsumer_Handle_RequestIDFromHeader(t *testing.T) {
	consumer, orderEventUC := createTestConsumer(t)

	orderEventUC.EXPECT().
		ProcessOrderEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) error {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		})

	msg := eventMessage(t, &service.OrderEvent{EventID: "evt-2", RequestID: "ignored"}, kafka.Header{Key: "request_id", Value: []byte("req-42")})
	require.NoError(t, consumer.handle(context.Background(), msg))
}

func TestNewKafkaConsumer_RequiresBrokersAndTopic(t *testing.T) {
	_, err := NewKafkaConsumer(ConsumerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    &config.Config{Kafka: &config.KafkaConfig{Topic: "order-events"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
