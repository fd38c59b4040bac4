package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	// ErrConflict marks a persistence-layer concurrency failure. Unlike the
	// other sentinels it is retryable by the caller.
	ErrConflict = errors.New("conflict")

	ErrInvalidStatus        = errors.New("invalid status")
	ErrApprovedUntranslated = errors.New("approved sibling awaiting translation")
)

// InvalidStatusError reports an action attempted from the wrong lifecycle
// state. It names the action, the state the action requires, and the state
// the draft was actually in.
type InvalidStatusError struct {
	Action   Action
	Required ApprovalStatus
	Actual   ApprovalStatus
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("%s requires status %s, draft is %s", e.Action, e.Required, e.Actual)
}

func (e *InvalidStatusError) Unwrap() error { return ErrInvalidStatus }

// ApprovedUntranslatedError reports that another language in the same
// translation set is already approved and has not been propagated yet.
// Retryable once the conflicting sibling is translated.
type ApprovedUntranslatedError struct {
	TranslationSetID uuid.UUID
}

func (e *ApprovedUntranslatedError) Error() string {
	return fmt.Sprintf("translation set %s has an approved sibling awaiting translation", e.TranslationSetID)
}

func (e *ApprovedUntranslatedError) Unwrap() error { return ErrApprovedUntranslated }

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
