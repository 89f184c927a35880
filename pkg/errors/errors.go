// Package errors provides structured error types for s2datasets.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The taxonomy is deliberately small:
//   - INVALID_ARGUMENT: bad dataset name, release id or call shape (local)
//   - AUTH_REQUIRED: an authenticated endpoint was called without an API key
//   - TRANSPORT_ERROR: network failure or non-success status after retries
//   - NOT_FOUND: a TRANSPORT_ERROR for a non-retryable 4xx response
//   - EMPTY_RESULT: a resolved manifest listed no files
//
// INVALID_ARGUMENT and AUTH_REQUIRED are raised before any network call.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidArgument, "unknown dataset %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeTransport, origErr, "fetch %s", url)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeAuthRequired    Code = "AUTH_REQUIRED"
	ErrCodeTransport       Code = "TRANSPORT_ERROR"
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeEmptyResult     Code = "EMPTY_RESULT"
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
// It unwraps the error chain looking for an *Error with a matching code.
// NOT_FOUND errors also match ErrCodeTransport.
func Is(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	if e.Code == code {
		return true
	}
	return code == ErrCodeTransport && e.Code == ErrCodeNotFound
}

// IsTransport reports whether err is a transport failure of any flavour.
func IsTransport(err error) bool {
	return Is(err, ErrCodeTransport)
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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix, keeping
// any context added by outer wraps. For other errors, returns the error
// string as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	if prefix, ok := strings.CutSuffix(err.Error(), e.Error()); ok {
		return prefix + msg
	}
	return msg
}
