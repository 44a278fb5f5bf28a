package impl

import (
	"context"
	"log/slog"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

type mailService struct {
	sender   service.MailSender
	renderer service.OTPEmailRenderer
	subject  string
	validate *validator.Validate
	logger   *slog.Logger
}

// MailServiceParams holds dependencies for MailService, injected by Fx.
type MailServiceParams struct {
	fx.In

	Sender   service.MailSender
	Renderer service.OTPEmailRenderer
	Config   *config.Config
	Logger   *slog.Logger
}

// NewMailService is the constructor for mailService.
func NewMailService(params MailServiceParams) usecase.MailUsecase {
	subject := ""
	if params.Config.Mail != nil {
		subject = params.Config.Mail.Subject
	}

	return &mailService{
		sender:   params.Sender,
		renderer: params.Renderer,
		subject:  subject,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

func (srv *mailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendOTPEmail renders the verification email and hands it to the sender.
func (srv *mailService) SendOTPEmail(ctx context.Context, email, otp string) error {
	email = strings.TrimSpace(email)
	if err := srv.validate.Var(email, "required,email"); err != nil {
		return domainerrors.ErrInvalidEmail
	}

	html, err := srv.PreviewOTPEmail(otp)
	if err != nil {
		return err
	}

	messageID, err := srv.sender.Send(ctx, &service.MailMessage{
		To:      email,
		Subject: srv.subject,
		HTML:    html,
	})
	if err != nil {
		return domainerrors.NewInternalError(errors.Wrap(err, "failed to send OTP email"))
	}

	srv.log(ctx).Info("OTP email sent", slog.String("messageID", messageID))

	return nil
}

// PreviewOTPEmail renders the verification email without sending it.
func (srv *mailService) PreviewOTPEmail(otp string) (string, error) {
	if strings.TrimSpace(otp) == "" {
		return "", domainerrors.ErrOTPRequired
	}

	html, err := srv.renderer.RenderOTPEmail(otp)
	if err != nil {
		return "", domainerrors.NewInternalError(err)
	}

	return html, nil
}
