package notifications

import (
	"context"
	"log/slog"
)

// LogNotifier writes notifications to the log. Used when no broker is
// configured, so development setups work without Kafka.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send logs the notification and always reports success.
func (n *LogNotifier) Send(_ context.Context, to, subject, body string) bool {
	n.logger.Info("notification", "to", to, "subject", subject, "body", body)
	return true
}
