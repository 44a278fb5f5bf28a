// Package mail renders and delivers transactional email.
package mail

import (
	"bytes"
	"embed"
	"html/template"

	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
)

// OTPEmailTitle is the document title of the verification email.
const OTPEmailTitle = "Email Verification - Rehaabit"

//go:embed templates/otp_email.html
var templateFS embed.FS

var otpTemplate = template.Must(template.ParseFS(templateFS, "templates/otp_email.html"))

// RenderOTPEmail returns the verification email document with otp interpolated.
func RenderOTPEmail(otp string) (string, error) {
	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, struct{ OTP string }{OTP: otp}); err != nil {
		return "", errors.Wrap(err, "failed to render OTP email")
	}

	return body.String(), nil
}

type otpRenderer struct{}

// NewOTPEmailRenderer returns the embedded-template renderer.
func NewOTPEmailRenderer() service.OTPEmailRenderer {
	return otpRenderer{}
}

func (otpRenderer) RenderOTPEmail(otp string) (string, error) {
	return RenderOTPEmail(otp)
}
