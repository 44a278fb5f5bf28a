package mail

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/resend/resend-go/v2"
)

// emailsAPI is the part of the Resend client used to send.
type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// resendSender delivers email through the Resend API.
type resendSender struct {
	emails emailsAPI
	from   string
	logger *slog.Logger
}

// NewResendSender creates a sender using apiKey, sending as from.
func NewResendSender(apiKey, from string, logger *slog.Logger) service.MailSender {
	return &resendSender{
		emails: resend.NewClient(apiKey).Emails,
		from:   from,
		logger: logger,
	}
}

// Send delivers msg and returns the Resend message id.
func (s *resendSender) Send(ctx context.Context, msg *service.MailMessage) (string, error) {
	sent, err := s.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to send email")
	}

	s.logger.InfoContext(ctx, "Email sent",
		slog.String("provider", "resend"),
		slog.String("message_id", sent.Id),
	)

	return sent.Id, nil
}
