package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrValidation marks user-correctable input errors (missing or invalid
	// required fields). Surfaced as 400.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced id that no longer exists.
	ErrNotFound = errors.New("registration not found")

	// ErrDuplicatePhone is the storage-level unique-constraint signal. The
	// repository translates driver duplicate-key errors into this sentinel.
	ErrDuplicatePhone = errors.New("phone number already registered")
)

// ValidationError wraps ErrValidation with the offending field.
func ValidationError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrValidation, field, reason)
}

// DuplicateError reports an attempt to register a phone number that already
// has a registration. It carries a summary of the existing record so the
// caller can tell the user when they signed up.
type DuplicateError struct {
	Name         string
	RegisteredAt time.Time
}

func (e *DuplicateError) Error() string {
	return "phone number already registered to " + e.Name
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicatePhone }

// DeliveryError reports a single-recipient send failure. It is accumulated
// as data inside a dispatch run, never propagated as control flow.
type DeliveryError struct {
	Email  string
	Reason string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %s", e.Email, e.Reason)
}
