package xerrors

import (
	"errors"
	"fmt"
)

// Common reusable application errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal server error")
	ErrRateLimited    = errors.New("too many requests")
	ErrSessionExpired = errors.New("session expired or invalid")
)

// Upstream failure taxonomy. Every error returned by the upstream client
// wraps exactly one of these.
var (
	// ErrNetwork: the request never produced a response (transport failure,
	// timeout, open circuit breaker).
	ErrNetwork = errors.New("network error")
	// ErrAuth: 401, invalid or expired token.
	ErrAuth = errors.New("authentication failed")
	// ErrValidation: any other 4xx, with the server's message attached.
	ErrValidation = errors.New("validation failed")
	// ErrServer: 5xx from the upstream.
	ErrServer = errors.New("upstream server error")
)

// Wrap adds context to an error (similar to fmt.Errorf("%w")).
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is allows checking whether an error is a specific sentinel error.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap extracts the underlying wrapped error.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// MessageOrDefault returns err.Error() or a fallback message if err is nil.
func MessageOrDefault(err error, fallback string) string {
	if err != nil {
		return err.Error()
	}
	return fallback
}

// FromStatusCode maps an upstream HTTP status code to a taxonomy sentinel.
// message is the human-readable body extracted from the response, if any.
func FromStatusCode(status int, message string) error {
	var sentinel error
	switch {
	case status == 401:
		sentinel = ErrAuth
	case status >= 400 && status < 500:
		sentinel = ErrValidation
	case status >= 500:
		sentinel = ErrServer
	default:
		return nil
	}
	if message == "" {
		return fmt.Errorf("upstream returned %d: %w", status, sentinel)
	}
	return fmt.Errorf("upstream returned %d (%s): %w", status, message, sentinel)
}

// Retryable reports whether the caller should be offered a manual retry.
// Auth and validation failures are final; the request was understood and
// rejected.
func Retryable(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrServer)
}
