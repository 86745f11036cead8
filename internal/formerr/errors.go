// Package formerr defines the error taxonomy shared by the form engine packages.
//
// Three kinds of failure exist:
//   - Config: a form or block description is inconsistent (duplicate id, empty
//     group). Detected at build time and fatal to construction.
//   - Validation: a field value failed its validators. Recoverable.
//   - IO: writing serialized output failed. Form state is unaffected.
//
// Unrecognised key input is never an error.
package formerr

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeConfig indicates an invalid form, field or block description
	ErrTypeConfig ErrorType = iota
	// ErrTypeValidation indicates a field value that failed validation
	ErrTypeValidation
	// ErrTypeIO indicates a failure while persisting form output
	ErrTypeIO
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeConfig:
		return "Configuration Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeIO:
		return "I/O Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is the error type returned by the form engine
type Error struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	FieldID string    // Field the error refers to (if any)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.FieldID != "" {
		msg = fmt.Sprintf("%s: %s", e.FieldID, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigError creates a configuration error for the given field id.
// fieldID may be empty when the error is not tied to a single field.
func NewConfigError(fieldID, message string) *Error {
	return &Error{
		Type:    ErrTypeConfig,
		Message: message,
		FieldID: fieldID,
	}
}

// NewValidationError creates a validation error for the given field id
func NewValidationError(fieldID, message string) *Error {
	return &Error{
		Type:    ErrTypeValidation,
		Message: message,
		FieldID: fieldID,
	}
}

// NewIOError wraps an I/O failure
func NewIOError(message string, err error) *Error {
	return &Error{
		Type:    ErrTypeIO,
		Message: message,
		Err:     err,
	}
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	return hasType(err, ErrTypeConfig)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrTypeValidation)
}

// IsIOError checks if an error is an I/O error
func IsIOError(err error) bool {
	return hasType(err, ErrTypeIO)
}

func hasType(err error, t ErrorType) bool {
	var formErr *Error
	if errors.As(err, &formErr) {
		return formErr.Type == t
	}
	return false
}
