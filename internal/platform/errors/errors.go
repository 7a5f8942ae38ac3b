// Package errors provides the structured error type shared by the check-in pipeline,
// its store adapters and the http layer
package errors

// Always import the project errors package as perr (platform/errors)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for logging and status mapping
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is a panic recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is a seam that is down or refusing work, retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeTooManyRequests is a caller over its submission budget
	ErrorCodeTooManyRequests

	// ErrorCodeUnauthorized is a request with no resolvable caller
	ErrorCodeUnauthorized

	// ErrorCodeValidation is input that fails a required field or format check
	ErrorCodeValidation

	// ErrorCodeJSON is a body that does not decode
	ErrorCodeJSON

	// ErrorCodeNotFound is a single row lookup that matched nothing
	ErrorCodeNotFound

	// ErrorCodeDB is a store failure. Its message is the store's own text
	ErrorCodeDB

	// ErrorCodeRangeConstraint is a stored value rejected by a range check constraint
	// the daily entry writer reacts to it by rescaling, everyone else treats it as DB
	ErrorCodeRangeConstraint
)

// ErrNotFound is returned by single row helpers when nothing matched
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// HTTPStatusCode turns an ErrorCode into an http status code
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrorCodeTooManyRequests:
		return http.StatusTooManyRequests
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a code, a human facing message and the step or repo call that raised it
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON form used by the envelope API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil && e.orig.Error() != e.msg {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending input field, if any
func (e *Error) Field() string { return e.field }

// Op returns the step or repo call label, if set
func (e *Error) Op() string { return e.op }

// Message returns msg without the wrapped cause
func (e *Error) Message() string { return e.msg }

// WireFrom converts any error into a Wire payload
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// CodeOf extracts an ErrorCode from any error, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the mapped HTTP status for any error
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As unwraps and returns (*Error, true) if err is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// MessageOf is the human facing text of err, without any wrapped cause
func MessageOf(err error) string {
	if e, ok := As(err); ok {
		return e.msg
	}
	return err.Error()
}

// WithField attaches a field to an *Error (copy-on-write). Foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// New returns a new *Error with the given code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf returns a new *Error with code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns a new *Error that wraps orig with code and message
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Persistence marks err as a failed write of a record the request cannot do without.
// Whatever err was classified as, the result is a DB error that keeps the store message,
// so a denied or rejected write never reads as a caller mistake
func Persistence(err error, step string) error {
	if err == nil {
		return nil
	}
	e := &Error{code: ErrorCodeDB, msg: MessageOf(err), op: step, orig: err}
	if inner, ok := As(err); ok && inner.op != "" {
		e.op = inner.op
	}
	return e
}

// JSONErrf returns a JSON error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf returns a panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unauthorizedf returns an unauthorized error
func Unauthorizedf(format string, a ...any) error { return Newf(ErrorCodeUnauthorized, format, a...) }

// TooManyRequestsf returns a rate limit error
func TooManyRequestsf(format string, a ...any) error {
	return Newf(ErrorCodeTooManyRequests, format, a...)
}
