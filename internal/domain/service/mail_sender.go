package service

import "context"

// MailMessage is an outgoing HTML email.
type MailMessage struct {
	To      string
	Subject string
	HTML    string
}

// MailSender delivers email.
type MailSender interface {
	// Send delivers msg and returns the provider message id.
	Send(ctx context.Context, msg *MailMessage) (string, error)
}

// OTPEmailRenderer renders the verification email document.
type OTPEmailRenderer interface {
	RenderOTPEmail(otp string) (string, error)
}
