// Package errors is the project error type: a stable code, a message, and
// an optional wrapped cause. Import as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for transport mapping and caller policy.
// Wire-stable; append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown covers anything unclassified
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic marks a recovered panic
	ErrorCodePanic

	// ErrorCodeUnavailable marks a transient condition worth retrying upstream
	ErrorCodeUnavailable

	// ErrorCodeConflict marks an edit conflict other than a duplicate key
	ErrorCodeConflict

	// ErrorCodeUnauthorized marks a missing or rejected credential
	ErrorCodeUnauthorized

	// ErrorCodeForbidden marks an access control rejection
	ErrorCodeForbidden

	// ErrorCodeInvalidArgument marks a bad input parameter
	ErrorCodeInvalidArgument

	// ErrorCodeValidation marks a caller mistake caught before storage
	ErrorCodeValidation

	// ErrorCodeJSON marks a body parse or bind failure
	ErrorCodeJSON

	// ErrorCodeNotFound marks a missing record
	ErrorCodeNotFound

	// ErrorCodeDuplicateKey marks a unique constraint violation
	ErrorCodeDuplicateKey

	// ErrorCodeDB marks a general storage failure
	ErrorCodeDB
)

// ErrNotFound is what single-row lookups return on zero rows. Callers read
// it as "no such record", distinct from a storage failure
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error pairs a code with a message and optionally wraps the cause.
// Field names the offending input for validation replies
type Error struct {
	code  ErrorCode
	msg   string
	field string
	cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *Error) Unwrap() error { return e.cause }

// Code returns the classification
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending input field, when known
func (e *Error) Field() string { return e.field }

// New builds an *Error with a fixed message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an *Error with a formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap builds an *Error around cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

// WithField copies err with a field attached; foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// As unwraps err to (*Error, true) when it is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Root walks Unwrap to the deepest cause
func Root(err error) error {
	for err != nil {
		next := stderrs.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// CodeOf classifies any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// Wire is the JSON error shape the API returns
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// WireFrom renders any error as a Wire payload
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// HTTPStatus maps any error to the HTTP status its code implies
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeDuplicateKey, ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeForbidden:
		return http.StatusForbidden
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Constructors for the codes handlers and services raise directly

// Validationf rejects caller input before any storage call
func Validationf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// Unauthorizedf rejects a missing or bad credential
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }

// Forbiddenf rejects an authenticated but unentitled caller
func Forbiddenf(format string, a ...any) error { return Newf(ErrorCodeForbidden, format, a...) }

// JSONErrf flags an unparseable request body
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf labels a recovered panic
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }
