// Package notify delivers player notifications to one or more sinks.
package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/lowbid/internal/notify Notifier

import (
	"context"
	"errors"
	"log/slog"

	"github.com/KirkDiggler/lowbid/internal/models"
)

// Notifier delivers a notification to its recipient
type Notifier interface {
	Notify(ctx context.Context, notification *models.Notification) error
}

// LogNotifier writes notifications to a structured logger
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that logs every notification
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// Notify logs the notification at info level
func (n *LogNotifier) Notify(ctx context.Context, notification *models.Notification) error {
	if notification == nil {
		return errors.New("notification cannot be nil")
	}

	n.logger.InfoContext(ctx, "notification",
		"kind", notification.Kind,
		"recipient", models.ShortAddress(notification.Recipient),
		"title", notification.Title,
		"message", notification.Message,
	)
	return nil
}

// Multi fans a notification out to every notifier. All notifiers are
// attempted; their errors are joined.
type Multi []Notifier

// Notify delivers to every notifier in order
func (m Multi) Notify(ctx context.Context, notification *models.Notification) error {
	var errs []error
	for _, notifier := range m {
		if notifier == nil {
			continue
		}
		if err := notifier.Notify(ctx, notification); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
