package service

import (
	"fmt"
	"net/http"
)

// AppError is the application-level error carried from the services to the
// HTTP layer: a client-facing code, a human-readable message, an HTTP status
// and the wrapped cause.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest builds an AppError for validation failures.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound builds an AppError for a missing resource.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrUnauthorized builds an AppError for missing or failed authentication.
func ErrUnauthorized(msg string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: msg,
		Status:  http.StatusUnauthorized,
	}
}

// ErrDomain builds an AppError for domain conflicts such as USERNAME_TAKEN.
// The HTTP status is derived from the code.
func ErrDomain(code, msg string) *AppError {
	status := http.StatusConflict
	if code == "PASSWORD_MISMATCH" {
		status = http.StatusBadRequest
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

// IsNotFound reports whether err maps to HTTP 404.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if app, ok := err.(*AppError); ok {
		return app.Status == http.StatusNotFound
	}
	return false
}
