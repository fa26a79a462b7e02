package common

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by repositories, services and handlers.
var (
	// ErrNotFound means no row matched the given primary key or filter.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is the mapped form of a unique-constraint violation
	// on students.email (SQLSTATE 23505).
	ErrDuplicateEmail = errors.New("email already registered")
)

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// NewValidationError builds a ValidationError for the named field.
func NewValidationError(field string) error {
	return &ValidationError{Field: field}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidateRequiredString rejects empty or whitespace-only required fields.
func ValidateRequiredString(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field)
	}
	return nil
}
