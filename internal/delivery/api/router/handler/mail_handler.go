package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MailHandler serves transactional email endpoints for other backends.
type MailHandler struct {
	mailUC usecase.MailUsecase
}

// NewMailHandler is the constructor for MailHandler
func NewMailHandler(mailUC usecase.MailUsecase) *MailHandler {
	return &MailHandler{mailUC: mailUC}
}

// SendOTPRequest is the body of POST /api/v1/mail/otp
type SendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// SendOTP renders the verification email and sends it.
func (h *MailHandler) SendOTP(c echo.Context) error {
	var req SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid mail input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.mailUC.SendOTPEmail(c.Request().Context(), req.Email, req.OTP); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, "OTP email sent", nil)
}
