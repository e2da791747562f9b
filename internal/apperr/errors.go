// Package apperr defines the error kinds the service layer signals.
// Handlers translate each kind into an HTTP status; nothing below the
// handler layer knows about status codes.
package apperr

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Wrap with context via the helpers below and test
// with errors.Is.
var (
	ErrValidation   = errors.New("invalid request data")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Validation returns a ValidationError carrying msg.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf returns a NotFoundError naming the missing entity.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Unauthorized returns an UnauthorizedError carrying msg.
func Unauthorized(msg string) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
}
