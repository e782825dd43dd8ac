// Package errors provides structured, code-carrying errors shared across the
// calculator. Callers match on the code with errors.As or HasCode rather than
// on message text.
package errors

import (
	"errors"
	"fmt"
)

// Error codes as constants
const (
	ErrCodeInvalidConfiguration = "INVALID_CONFIGURATION"
	ErrCodeInvalidArgument      = "INVALID_ARGUMENT"
	ErrCodeUnknownCommand       = "UNKNOWN_COMMAND"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

// StructuredError pairs a stable machine-readable code with a human-readable
// message and an optional wrapped cause.
type StructuredError struct {
	Code    string
	Message string
	Err     error
}

func (e *StructuredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StructuredError) Unwrap() error {
	return e.Err
}

// New returns a StructuredError with the given code and message.
func New(code, message string) error {
	return &StructuredError{Code: code, Message: message}
}

// Newf returns a StructuredError with a formatted message.
func Newf(code, format string, args ...any) error {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns a StructuredError wrapping err. A nil err returns nil.
func Wrap(code string, err error, message string) error {
	if err == nil {
		return nil
	}
	return &StructuredError{Code: code, Message: message, Err: err}
}

// HasCode reports whether any error in err's chain is a StructuredError with
// the given code.
func HasCode(err error, code string) bool {
	var se *StructuredError
	return errors.As(err, &se) && se.Code == code
}

// CodeOf returns the code of the outermost StructuredError in err's chain, or
// ErrCodeInternal when err carries no code.
func CodeOf(err error) string {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
