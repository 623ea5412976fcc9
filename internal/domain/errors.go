package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when an event or guest id does not match any record.
	ErrNotFound = errors.New("not found")
	// ErrEventFull is returned when a guest add would exceed the event capacity.
	ErrEventFull = errors.New("event is full")
	// ErrDuplicateGuest is returned when a guest with the same name (case-insensitive)
	// is already on the list.
	ErrDuplicateGuest = errors.New("guest already registered")
	// ErrInvalidShareToken is returned when a share token fails to parse or verify.
	ErrInvalidShareToken = errors.New("invalid share token")
)

// ValidationError carries field-level validation messages. Callers that need
// the individual messages can errors.As into it.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// NewValidationError wraps a non-empty list of field messages.
func NewValidationError(fields []string) *ValidationError {
	return &ValidationError{Fields: fields}
}
