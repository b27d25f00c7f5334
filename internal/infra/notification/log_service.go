package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
)

// logNotificationService writes notifications to the log instead of sending them.
type logNotificationService struct {
	logger *slog.Logger
}

// NewLogNotificationService creates a notification service for environments without FCM.
func NewLogNotificationService(logger *slog.Logger) service.NotificationService {
	return &logNotificationService{logger: logger}
}

func (s *logNotificationService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Push notification (not sent)", "title", title, "body", body, "data", data)

	return nil
}

func (s *logNotificationService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "Push notification batch (not sent)",
		"tokenCount", len(tokens),
		"title", title,
		"body", body,
		"data", data,
	)

	return len(tokens), 0, nil, nil
}
