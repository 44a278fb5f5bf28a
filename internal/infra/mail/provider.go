package mail

import (
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
)

// NewMailSender creates a MailSender based on configuration
func NewMailSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil {
		return NewLogSender(logger), nil
	}

	switch mailCfg.Provider {
	case constants.MailProviderLog, "":
		return NewLogSender(logger), nil
	case constants.MailProviderResend:
		if mailCfg.APIKey == "" || mailCfg.From == "" {
			return nil, errors.New("api key and from address are required for resend provider")
		}

		return NewResendSender(mailCfg.APIKey, mailCfg.From, logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", mailCfg.Provider)
	}
}
