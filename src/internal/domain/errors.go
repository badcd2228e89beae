package domain

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("Record not found")
var ErrAccountExists = errors.New("Account already exists")

// ValidationError reports bad input to a constructor or an account operation.
// Validation always runs before any mutation, so a call that fails with a
// ValidationError leaves state untouched.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// FormatError reports a confirmation code that cannot be decoded.
type FormatError struct {
	Input   string
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid confirmation code %q: %s: %v", e.Input, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid confirmation code %q: %s", e.Input, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsFormatError reports whether err is, or wraps, a *FormatError.
func IsFormatError(err error) bool {
	var target *FormatError
	return errors.As(err, &target)
}
