// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when an entity fails field validation.
	// It is always wrapped in a ValidationError carrying the field name
	// and a human-readable message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an entity ID is malformed.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError describes a single field-level validation failure.
// It wraps ErrValidation so callers can detect the category with
// errors.Is while still reading the field-specific detail.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap supports errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
