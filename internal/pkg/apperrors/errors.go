package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain failure. Every kind maps to one HTTP status.
type Kind int

const (
	// KindValidation is malformed or missing input the client can fix.
	KindValidation Kind = iota
	// KindForbidden is an authenticated caller acting outside its rights.
	KindForbidden
	// KindNotFound is a missing referenced entity.
	KindNotFound
	// KindInvalidState is an action not legal in the current lifecycle
	// state (covers invalid transitions as well).
	KindInvalidState
	// KindLocked is an OTP whose attempt budget is exhausted.
	KindLocked
	// KindExpired is an OTP past its TTL.
	KindExpired
	// KindDriverUnavailable is an assignment whose preconditions fail.
	KindDriverUnavailable
	// KindInternal is everything else.
	KindInternal
)

// Error is a classified domain error.
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

// New creates a classified error with a caller-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a classified error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind from err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Message returns the caller-facing message of err, or a generic one for
// unclassified errors so internals never leak to clients.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}

// HTTPStatus maps an error kind to its stable status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindForbidden, KindLocked:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidState:
		return http.StatusConflict
	case KindExpired:
		return http.StatusBadRequest
	case KindDriverUnavailable:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
