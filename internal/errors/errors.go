// Package errors provides the error types used across the tipjar service.
// All service-layer errors should use AppError so that handlers can map them
// to accurate status codes without leaking internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// client-facing message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is a sentinel with the same code, so wrapped
// errors still match their sentinel via errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Tip page errors. The messages are part of the wire contract: clients match
// on them, so they must not change.
var (
	ErrInvalidData     = &AppError{Code: "INVALID_DATA", Message: "Invalid data", StatusCode: http.StatusBadRequest}
	ErrTokenRequired   = &AppError{Code: "TOKEN_REQUIRED", Message: "Token required", StatusCode: http.StatusBadRequest}
	ErrTipPageNotFound = &AppError{Code: "TIP_PAGE_NOT_FOUND", Message: "Tip page not found", StatusCode: http.StatusNotFound}
)

// General errors.
var (
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
