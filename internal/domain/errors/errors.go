package errors

import (
	"net/http"

	"marketplace/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Underlying cause, surfaced only for internal errors
}

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
)

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewValidationError reports missing or malformed caller input (400).
func NewValidationError(message string) *BaseError {
	return NewBaseError(http.StatusBadRequest, CodeValidationFailed, message, "")
}

// NewNotFoundError reports a referenced entity that does not exist (404).
func NewNotFoundError(message string) *BaseError {
	return NewBaseError(http.StatusNotFound, CodeNotFound, message, "")
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	ErrMissingRequiredFields = NewValidationError("Missing required fields")
	ErrServiceIDRequired     = NewValidationError("Service ID is required")
	ErrUpdateIDRequired      = NewValidationError("Service ID are required")
	ErrDeleteIDsRequired     = NewValidationError("Service ID and SubCategory ID are required")
	ErrInvalidStatus         = NewValidationError("Invalid service status")
	ErrInvalidPriceStatus    = NewValidationError("Invalid price status")
	ErrInvalidEmail          = NewValidationError("A valid email is required")
	ErrOTPRequired           = NewValidationError("OTP is required")

	ErrServiceNotFound     = NewNotFoundError("Service not found")
	ErrSubCategoryNotFound = NewNotFoundError("SubCategory not found")

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"Permission denied",
		"",
	)
)

// InternalError represents an upload, store or unexpected failure.
// The underlying message is kept for diagnostics.
type InternalError struct {
	err error
}

// NewInternalError wraps err as an internal error. A nil err yields nil.
func NewInternalError(err error) AppError {
	if err == nil {
		return nil
	}

	return &InternalError{err: err}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying cause
func (e *InternalError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *InternalError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *InternalError) ErrorCode() string {
	return CodeInternalError
}

// Message returns the user-facing message
func (e *InternalError) Message() string {
	return "Internal server error"
}

// Details returns the underlying error message
func (e *InternalError) Details() string {
	return e.err.Error()
}

// IsKind reports whether err carries an AppError with the given error code.
func IsKind(err error, code string) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == code
}
