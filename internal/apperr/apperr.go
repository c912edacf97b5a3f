// Package apperr defines the error kinds returned by the service layer.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the transport layer can pick a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is the structured error carried from services to handlers.
// Message is safe to show to callers; Err keeps the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: "Invalid data provided: " + msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Internal wraps an unexpected failure. The cause is kept out of Message.
func Internal(err error, msg string) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error: " + msg, Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message of err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// HTTPStatus maps a kind to the status code the API responds with.
func HTTPStatus(k Kind) int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
