// Package apperrors defines the error taxonomy shared by all handlers.
// Every failure crossing a handler boundary is one of these kinds; the
// handlers package owns the single translation to HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for HTTP translation
type Kind int

const (
	// KindUpstream is any downstream provider or API failure
	KindUpstream Kind = iota
	// KindValidation is malformed or missing required input
	KindValidation
	// KindMethodNotAllowed is a request with an unsupported HTTP method
	KindMethodNotAllowed
	// KindAuthMissing is an absent or malformed credential
	KindAuthMissing
	// KindAuthInvalid is a credential that failed verification
	KindAuthInvalid
	// KindNotFound is a resource that could not be resolved
	KindNotFound
)

// Error is a classified application error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation creates a validation error
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// MethodNotAllowed creates a method-not-allowed error
func MethodNotAllowed(method string) *Error {
	return &Error{Kind: KindMethodNotAllowed, Message: fmt.Sprintf("method %s not allowed", method)}
}

// AuthMissing creates an error for an absent or malformed credential
func AuthMissing(message string) *Error {
	return &Error{Kind: KindAuthMissing, Message: message}
}

// AuthInvalid creates an error for a credential that failed verification
func AuthInvalid(err error) *Error {
	return &Error{Kind: KindAuthInvalid, Message: "invalid or expired token", Err: err}
}

// NotFound creates a not-found error
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Upstream wraps a downstream provider failure
func Upstream(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from an error chain. Unclassified errors report
// KindUpstream, so an unexpected failure still maps to a 500.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUpstream
}

// IsKind reports whether the error chain contains an Error of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
