package randomrpc

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by this package wraps exactly one
// of these sentinels, so callers can branch with errors.Is.
var (
	// ErrInvalidArgument covers local parameter validation failures and
	// server-reported parameter faults. Never retried.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized covers server-reported API-key faults.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrThrottleExceeded means the server advises waiting longer than the
	// configured maximum blocking time. Raised before any network activity.
	ErrThrottleExceeded = errors.New("advisory delay exceeds max blocking time")
	// ErrServerError covers unknown or server-side error codes.
	ErrServerError = errors.New("server error")
	// ErrMalformedResponse means the response violated the protocol shape.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInterrupted means the call was canceled while waiting.
	ErrInterrupted = errors.New("interrupted")
	// ErrTransportFailure means the HTTP exchange itself failed.
	ErrTransportFailure = errors.New("transport failure")
)

// Error is the concrete error type returned by the client. Category is one
// of the sentinels above; Code and Message are populated only for
// server-reported faults.
type Error struct {
	Category error
	Code     int
	Message  string
	cause    error
}

func (e *Error) Error() string {
	switch {
	case e.Code != 0:
		return fmt.Sprintf("%v: code %d: %s", e.Category, e.Code, e.Message)
	case e.cause != nil:
		return fmt.Sprintf("%v: %s: %v", e.Category, e.Message, e.cause)
	default:
		return fmt.Sprintf("%v: %s", e.Category, e.Message)
	}
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Category, e.cause}
	}
	return []error{e.Category}
}

// serverErr builds an error for a fault reported in the response envelope.
func serverErr(category error, code int, message string) *Error {
	return &Error{Category: category, Code: code, Message: message}
}

// localErr builds an error raised by the client itself.
func localErr(category error, format string, args ...interface{}) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...)}
}

// wrapErr attaches a category to an underlying error.
func wrapErr(category error, cause error, message string) *Error {
	return &Error{Category: category, Message: message, cause: cause}
}
