// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the bigarray library.
//
// Every fault in this library is a programming-contract violation that is
// surfaced immediately to the caller; nothing is retried or silently
// recovered. Range faults are raised before any element is touched, so a
// failed operation never leaves a partial mutation behind.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrInvalidArgument marks argument faults: negative counts,
	// negative capacities, nil collaborators.
	ErrInvalidArgument = fmt.Errorf("invalid argument")

	// ErrIndexOutOfRange marks range faults: position or count overflow
	// against an array, slice or mapped-region bound.
	ErrIndexOutOfRange = fmt.Errorf("index out of range")

	// ErrInvalidState marks usage-contract violations: forcing a READ
	// buffer, forcing a range outside the current mapping, using a
	// disposed buffer.
	ErrInvalidState = fmt.Errorf("invalid state")

	// ErrTooLarge marks capacity overflow against the addressing
	// ceiling of the chosen native representation.
	ErrTooLarge = fmt.Errorf("too large")

	// ErrNotSupported marks operations unavailable on this platform.
	ErrNotSupported = fmt.Errorf("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeIndexOutOfRange
	ErrCodeInvalidState
	ErrCodeTooLarge
	ErrCodeNotSupported
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back to the matching sentinel error so that
// errors.Is works on structured errors too.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeIndexOutOfRange:
		return ErrIndexOutOfRange
	case ErrCodeInvalidState:
		return ErrInvalidState
	case ErrCodeTooLarge:
		return ErrTooLarge
	case ErrCodeNotSupported:
		return ErrNotSupported
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
