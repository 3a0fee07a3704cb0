package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateIdentity    = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthenticated      = errors.New("access token required")
	ErrInvalidToken         = errors.New("invalid token")
	ErrForbidden            = errors.New("insufficient permissions")
	ErrNotFound             = errors.New("not found")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file too large")
	ErrRateLimited          = errors.New("rate limit exceeded")
	ErrMissingSigningSecret = errors.New("token signing secret is not configured")
)

// ValidationError carries a client-facing message for a rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid returns a ValidationError with the given message.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError names the resource that could not be found.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFound returns a NotFoundError for resource (e.g. "Team").
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// StoreFailure wraps a persistence error so callers can match
// ErrStoreUnavailable while the cause stays available for logging.
func StoreFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
