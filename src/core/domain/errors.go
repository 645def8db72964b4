package domain

import (
	"errors"
	"fmt"
)

// Domain error types for consistent error handling across the application.
// These errors represent business rule violations and domain constraints.

var (
	// ErrNotFound is returned when a referenced resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownLesson is returned when a lesson id is not in the catalog.
	ErrUnknownLesson = errors.New("unknown lesson")

	// ErrNotEligible is returned when redemption is attempted before all
	// eligibility gates pass.
	ErrNotEligible = errors.New("not eligible")

	// ErrStorage is returned when the state document cannot be read or written.
	ErrStorage = errors.New("storage error")
)

// DomainError wraps a base error with additional context.
// It provides a standard way to add details to domain errors.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
	}
}

// NewUnknownLessonError creates an unknown lesson error for the given id.
func NewUnknownLessonError(lessonID string) *DomainError {
	return &DomainError{
		Base:    ErrUnknownLesson,
		Message: fmt.Sprintf("unknown lesson id: %s", lessonID),
	}
}

// NewNotEligibleError creates a not eligible error with context.
func NewNotEligibleError(message string) *DomainError {
	return &DomainError{
		Base:    ErrNotEligible,
		Message: message,
	}
}

// NewStorageError wraps a storage failure, keeping the cause for errors.As.
func NewStorageError(message string, cause error) *DomainError {
	msg := message
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", message, cause)
	}
	return &DomainError{
		Base:    ErrStorage,
		Message: msg,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownLesson checks if an error is an unknown lesson error.
func IsUnknownLesson(err error) bool {
	return errors.Is(err, ErrUnknownLesson)
}

// IsNotEligible checks if an error is a not eligible error.
func IsNotEligible(err error) bool {
	return errors.Is(err, ErrNotEligible)
}

// IsStorageError checks if an error is a storage error.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
