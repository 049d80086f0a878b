// Package errors provides the error taxonomy for uuidhunt lookups.
// It extends the standard errors package with wrapping helpers and the
// transient/fatal classification used by the retry layer.
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrRateLimit indicates the endpoint answered with a rate-limit signal (429)
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrNotFound indicates the requested name is not registered
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrConnectionFailed indicates a connection could not be established
	ErrConnectionFailed = errors.New("connection failed")

	// ErrUnauthorized indicates authentication or authorization failed.
	// Treated as fatal: retrying does not help and every other lookup will fail too.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEndpointGone indicates the endpoint is permanently unavailable (410)
	ErrEndpointGone = errors.New("endpoint permanently unavailable")

	// ErrServiceUnavailable indicates a service is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidResponse indicates a response could not be parsed or was malformed
	ErrInvalidResponse = errors.New("invalid response")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
//
// Example:
//
//	if err != nil {
//	    return errors.Wrapf(err, "lookup of %q failed", name)
//	}
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsRateLimit reports whether the error is a rate limit error
func IsRateLimit(err error) bool {
	return Is(err, ErrRateLimit)
}

// IsNotFound reports whether the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsInvalidResponse reports whether the error is an invalid response error
func IsInvalidResponse(err error) bool {
	return Is(err, ErrInvalidResponse)
}

// IsFatal reports whether err means the endpoint cannot serve any further
// lookups. Fatal errors are never retried.
func IsFatal(err error) bool {
	return Is(err, ErrUnauthorized) || Is(err, ErrEndpointGone)
}

// IsTransient reports whether a failed lookup may succeed if attempted again.
// Unknown failures count as transient; the attempt budget bounds their cost.
// Context cancellation is not transient: the caller asked to stop.
func IsTransient(err error) bool {
	if err == nil || IsFatal(err) {
		return false
	}
	return !Is(err, context.Canceled)
}
