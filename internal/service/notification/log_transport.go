package notification

import (
	"context"
	"log/slog"
)

// LogTransport writes messages to the log instead of delivering them.
type LogTransport struct {
	logger *slog.Logger
}

func NewLogTransport(logger *slog.Logger) *LogTransport {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(_ context.Context, msg Message) error {
	t.logger.Info("mail",
		slog.String("kind", msg.Kind),
		slog.Any("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	t.logger.Debug("mail body", slog.String("text", msg.Text))
	return nil
}
