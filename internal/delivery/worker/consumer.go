package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/delivery"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

const retryBackoff = 2 * time.Second

// ConsumerParams holds dependencies for the Kafka order event consumer
type ConsumerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	OrderEventUC usecase.OrderEventUsecase
}

type kafkaConsumer struct {
	reader       *kafka.Reader
	logger       *slog.Logger
	orderEventUC usecase.OrderEventUsecase
}

// NewKafkaConsumer creates a consumer group reader on the order events topic.
// Offsets are committed only after an event was handled or dropped.
func NewKafkaConsumer(params ConsumerParams) (delivery.Delivery, error) {
	if params.Cfg.Kafka == nil || len(params.Cfg.Kafka.Brokers) == 0 || params.Cfg.Kafka.Topic == "" {
		return nil, errors.New("kafka brokers and topic are required")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  params.Cfg.Kafka.Brokers,
		GroupID:  params.Cfg.Kafka.GroupID,
		Topic:    params.Cfg.Kafka.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			params.Logger.Error("[Kafka] reader error", slog.Any("args", args), slog.String("msg", msg))
		}),
	})

	consumer := &kafkaConsumer{
		reader:       reader,
		logger:       params.Logger,
		orderEventUC: params.OrderEventUC,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(reader.Close())
		},
	})

	return consumer, nil
}

// Serve fetches messages until the reader is closed or ctx is done
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	c.logger.Info("Starting Kafka order event consumer",
		slog.String("topic", c.reader.Config().Topic),
		slog.String("group_id", c.reader.Config().GroupID),
	)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}

			return errors.Wrap(err, "failed to fetch kafka message")
		}

		// Retry in place so later offsets are never committed ahead of this one
		for attempt := 1; ; attempt++ {
			err := c.handle(ctx, msg)
			if err == nil {
				break
			}
			c.logger.Warn("[Kafka] Retrying order event",
				slog.Int64("offset", msg.Offset),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryBackoff):
			}
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to commit kafka message")
		}
	}
}

// handle returns an error only when the message should be retried
func (c *kafkaConsumer) handle(ctx context.Context, msg kafka.Message) error {
	attributes := make(map[string]string, len(msg.Headers))
	for _, header := range msg.Headers {
		attributes[header.Key] = string(header.Value)
	}

	var event service.OrderEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Error("[Kafka] Dropping malformed order event",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return nil
	}

	requestID := attributes["request_id"]
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := c.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	err := c.orderEventUC.ProcessOrderEvent(ctx, &event)
	if err == nil {
		return nil
	}
	if errors.Is(err, usecase.ErrRetryable) {
		return err
	}

	reqLogger.Error("[Kafka] Dropping order event",
		slog.String("event_id", event.EventID),
		slog.Any("error", err),
	)

	return nil
}
