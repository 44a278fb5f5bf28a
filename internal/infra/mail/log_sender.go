package mail

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/service"

	"github.com/google/uuid"
)

// logSender writes messages to the log instead of delivering them.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender is meant for local development.
func NewLogSender(logger *slog.Logger) service.MailSender {
	return &logSender{logger: logger}
}

// Send logs the recipient and subject and returns a generated id.
func (s *logSender) Send(ctx context.Context, msg *service.MailMessage) (string, error) {
	id := uuid.NewString()
	s.logger.InfoContext(ctx, "Email not delivered (log provider)",
		slog.String("message_id", id),
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("html_bytes", len(msg.HTML)),
	)

	return id, nil
}
