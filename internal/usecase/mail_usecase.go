package usecase

import "context"

// MailUsecase defines the transactional email use cases
type MailUsecase interface {
	// SendOTPEmail renders the verification email for otp and sends it to email
	SendOTPEmail(ctx context.Context, email, otp string) error

	// PreviewOTPEmail renders the verification email without sending it
	PreviewOTPEmail(otp string) (string, error)
}
