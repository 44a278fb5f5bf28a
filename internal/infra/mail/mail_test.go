package mail

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRenderOTPEmail(t *testing.T) {
	html, err := RenderOTPEmail("482913")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>"+OTPEmailTitle+"</title>")
	assert.Contains(t, html, "Verify Your Email")
	assert.Contains(t, html, "482913")
	assert.Contains(t, html, "mailto:support@rehaabit.com")
	assert.NotContains(t, html, "{{")
}

func TestRenderOTPEmail_EscapesInput(t *testing.T) {
	html, err := RenderOTPEmail(`<script>alert(1)</script>`)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

type fakeEmails struct {
	request *resend.SendEmailRequest
	err     error
}

func (f *fakeEmails) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.request = params
	if f.err != nil {
		return nil, f.err
	}

	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestResendSender_Send(t *testing.T) {
	emails := &fakeEmails{}
	sender := &resendSender{emails: emails, from: "Rehaabit <no-reply@rehaabit.com>", logger: testLogger()}

	id, err := sender.Send(context.Background(), &service.MailMessage{
		To:      "user@example.com",
		Subject: OTPEmailTitle,
		HTML:    "<p>hi</p>",
	})

	require.NoError(t, err)
	assert.Equal(t, "email-1", id)
	assert.Equal(t, "Rehaabit <no-reply@rehaabit.com>", emails.request.From)
	assert.Equal(t, []string{"user@example.com"}, emails.request.To)
	assert.Equal(t, "<p>hi</p>", emails.request.Html)
}

func TestResendSender_SendError(t *testing.T) {
	sender := &resendSender{emails: &fakeEmails{err: errors.New("rate limited")}, logger: testLogger()}

	_, err := sender.Send(context.Background(), &service.MailMessage{To: "user@example.com"})

	assert.ErrorContains(t, err, "rate limited")
}

func TestNewMailSender(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.MailConfig
		wantErr bool
	}{
		{"not configured", nil, false},
		{"log", &config.MailConfig{Provider: "log"}, false},
		{"resend", &config.MailConfig{Provider: "resend", APIKey: "re_test", From: "a@b.c"}, false},
		{"resend without key", &config.MailConfig{Provider: "resend", From: "a@b.c"}, true},
		{"unknown", &config.MailConfig{Provider: "smtp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewMailSender(&config.Config{Mail: tt.cfg}, testLogger())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, sender)
		})
	}
}
