package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks lookups over the taxonomy that resolved to nothing
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidInput marks rejected request parameters
	ErrInvalidInput = errors.New("invalid input")
	// ErrInternal marks unexpected failures
	ErrInternal = errors.New("internal error")
)

// DomainError carries a stable code plus a user-safe message around a
// sentinel error.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (for logs and wrapping)
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the message safe to expose to API callers
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped sentinel
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a not-found error for a named resource
func NewNotFoundError(resourceType, name string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, name),
		Err:     ErrNotFound,
	}
}

// NewInvalidInputError creates an invalid-input error
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewInternalError wraps an unexpected failure without exposing details
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput reports whether err is an invalid-input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInternalError reports whether err is an internal error
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}
