// Package response renders the JSON envelope shared by every endpoint.
package response

import (
	"encoding/json"
	"net/http"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response. Extra carries entity-specific
// top-level keys such as "totalServices".
type Envelope struct {
	Success bool
	Message string
	Data    any
	Error   string
	Extra   map[string]any
}

// MarshalJSON flattens Extra next to the fixed keys. Empty optional keys are omitted.
func (e Envelope) MarshalJSON() ([]byte, error) {
	body := make(map[string]any, len(e.Extra)+4)
	for k, v := range e.Extra {
		body[k] = v
	}

	body["success"] = e.Success
	if e.Message != "" {
		body["message"] = e.Message
	}
	if e.Data != nil {
		body["data"] = e.Data
	}
	if e.Error != "" {
		body["error"] = e.Error
	}

	return json.Marshal(body)
}

// Success returns a successful response carrying data
func Success(c echo.Context, statusCode int, message string, data any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessWithFields returns a successful response with entity-specific keys
func SuccessWithFields(c echo.Context, statusCode int, message string, fields map[string]any) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Extra:   fields,
	})
}

// Fail returns an error response. detail is only rendered when not empty.
func Fail(c echo.Context, statusCode int, message, detail string) error {
	return c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
		Error:   detail,
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, message string) error {
	return Fail(c, http.StatusBadRequest, message, "")
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Fail(c, http.StatusUnauthorized, message, "")
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, message string) error {
	return Fail(c, http.StatusForbidden, message, "")
}

// NotFound returns a 404 error
func NotFound(c echo.Context, message string) error {
	return Fail(c, http.StatusNotFound, message, "")
}

// AppError renders a domain error. Only internal errors expose their cause.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	detail := ""
	if appErr.HTTPCode() >= http.StatusInternalServerError {
		detail = appErr.Details()
	}

	return Fail(c, appErr.HTTPCode(), appErr.Message(), detail)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
