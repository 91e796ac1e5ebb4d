package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Clock state machine violations. These are expected user-facing
	// conditions, surfaced with a clear message and never retried.
	ErrAlreadyClockedIn = errors.New("already clocked in")
	ErrNoOpenBlock      = errors.New("no open time block")
	ErrNotWorking       = errors.New("not working")
	ErrBreakAlreadyOpen = errors.New("break already open")
	ErrNoOpenBreak      = errors.New("no open break")

	// Reporting errors.
	ErrDuplicateReport = errors.New("report already exists for this month")
	ErrNoData          = errors.New("no completed time blocks in period")

	// ErrInvariantViolation indicates corrupted state that should have been
	// impossible under the database constraints (for example more than one
	// open block for a worker). It is fatal: logged at error level, never
	// silently repaired.
	ErrInvariantViolation = errors.New("time tracking invariant violated")

	// ErrStoreUnavailable marks transient persistence failures. Callers may
	// retry with backoff; the core itself never retries a clock action.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
