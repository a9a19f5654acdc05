// Package errors provides structured error types for axisticks.
//
// Every error surfaced by the renderer, the configuration loader and the
// CLI carries a machine-readable [Code] so callers (the HTTP handlers in
// particular) can map failures without string matching.
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NOT_CONVERGED, CLOSED: size feedback outcomes
//   - UNSUPPORTED, INTERNAL_*: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidOrientation, "unknown orientation %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidOrientation) {
//	    // reject the request
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidOrientation Code = "INVALID_ORIENTATION"
	ErrCodeInvalidScale       Code = "INVALID_SCALE"
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"

	// Size feedback outcomes
	ErrCodeNotConverged Code = "NOT_CONVERGED"
	ErrCodeClosed       Code = "CLOSED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// Only the outermost *Error in the chain is consulted.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix for *Error
// values and the plain error string otherwise.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInvalid reports whether err carries one of the INVALID_* codes.
func IsInvalid(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeInvalidOrientation, ErrCodeInvalidScale,
		ErrCodeInvalidConfig, ErrCodeInvalidFormat:
		return true
	}
	return false
}
