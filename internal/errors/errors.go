// Package errors provides standardized domain errors with codes for the
// BriefBeer core.
//
// Usage:
//
//	// In components - return typed errors
//	if resp.StatusCode != http.StatusOK {
//	    return errors.Networkf("list page %d: status %d", page, resp.StatusCode)
//	}
//
//	// At absorption boundaries - check with errors.Is
//	if errors.Is(err, errors.ErrNetwork) {
//	    // fall back to cache, clear loading flag
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the core. The first four are the failure
// taxonomy of the sync layer; the rest cover the ambient surface.
const (
	CodeNotFound   Code = "NOT_FOUND"
	CodeNetwork    Code = "NETWORK"
	CodeDecode     Code = "DECODE"
	CodeSeedParse  Code = "SEED_PARSE"
	CodeValidation Code = "VALIDATION"
	CodeConflict   Code = "CONFLICT"
	CodeInternal   Code = "INTERNAL"
)

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error  // unexported, for wrapping
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		cause:   err,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrNotFound   = &Error{Code: CodeNotFound, Message: "not found"}
	ErrNetwork    = &Error{Code: CodeNetwork, Message: "network failure"}
	ErrDecode     = &Error{Code: CodeDecode, Message: "decode failure"}
	ErrSeedParse  = &Error{Code: CodeSeedParse, Message: "seed dataset unreadable"}
	ErrValidation = &Error{Code: CodeValidation, Message: "validation error"}
	ErrConflict   = &Error{Code: CodeConflict, Message: "conflict"}
	ErrInternal   = &Error{Code: CodeInternal, Message: "internal error"}
)

// Constructor functions for creating errors with custom messages.

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// NotFoundf creates a not found error with formatted message.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Network creates a network failure error.
func Network(msg string) *Error {
	return &Error{Code: CodeNetwork, Message: msg}
}

// Networkf creates a network failure error with formatted message.
func Networkf(format string, args ...any) *Error {
	return &Error{Code: CodeNetwork, Message: fmt.Sprintf(format, args...)}
}

// Decode creates a decode failure error.
func Decode(msg string) *Error {
	return &Error{Code: CodeDecode, Message: msg}
}

// Decodef creates a decode failure error with formatted message.
func Decodef(format string, args ...any) *Error {
	return &Error{Code: CodeDecode, Message: fmt.Sprintf(format, args...)}
}

// SeedParse creates a seed parse failure error.
func SeedParse(msg string) *Error {
	return &Error{Code: CodeSeedParse, Message: msg}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// Conflict creates a conflict error.
func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

// Internal creates an internal error.
func Internal(msg string) *Error {
	return &Error{Code: CodeInternal, Message: msg}
}

// Internalf creates an internal error with formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, cause: err}
}

// Wrapf wraps an error with a code and formatted message.
func Wrapf(err error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}
}
