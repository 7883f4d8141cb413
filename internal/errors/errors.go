package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess           = 0   // Indicates successful execution.
	ExitErrorGeneric      = 1   // Indicates a generic error.
	ExitErrorTimeout      = 2   // Indicates the operation timed out.
	ExitErrorInvalidInput = 3   // Indicates a query outside the defined domain.
	ExitErrorConfig       = 4   // Indicates a configuration error.
	ExitErrorInternal     = 5   // Indicates a solver invariant violation.
	ExitErrorCanceled     = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidArgumentError represents a query argument outside the defined domain
// of the closed-form formulas (for example N < 1 or m < 1). It is detected at
// the formula or protocol boundary and propagated to the caller rather than
// silently clamped.
type InvalidArgumentError struct {
	// Field is the name of the offending argument ("n", "m", "limit", ...).
	Field string
	// Value is the rejected value.
	Value uint64
	// Message explains the domain constraint that was violated.
	Message string
}

// Error returns a formatted message describing the domain violation.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%d: %s", e.Field, e.Value, e.Message)
}

// NewInvalidArgument creates a new InvalidArgumentError.
//
// Parameters:
//   - field: The name of the offending argument.
//   - value: The rejected value.
//   - message: The domain constraint that was violated.
//
// Returns:
//   - error: A new InvalidArgumentError instance.
func NewInvalidArgument(field string, value uint64, message string) error {
	return InvalidArgumentError{Field: field, Value: value, Message: message}
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var iae InvalidArgumentError
	return errors.As(err, &iae)
}

// MissingCacheEntryError represents an internal invariant violation: a query's
// N was not present in the result cache after the compute phase. Given the
// solver algorithm this should never occur; if it does, it indicates a bug in
// the deduplication/compute ordering and is not a recoverable condition.
type MissingCacheEntryError struct {
	// N is the query bound whose cache entry was missing.
	N uint64
}

// Error returns a formatted message describing the invariant violation.
func (e MissingCacheEntryError) Error() string {
	return fmt.Sprintf("missing cache entry for n=%d: solver invariant violated", e.N)
}

// NewMissingCacheEntry creates a MissingCacheEntryError for the given bound.
func NewMissingCacheEntry(n uint64) error {
	return MissingCacheEntryError{N: n}
}

// IsMissingCacheEntry reports whether err is (or wraps) a MissingCacheEntryError.
func IsMissingCacheEntry(err error) bool {
	var mce MissingCacheEntryError
	return errors.As(err, &mce)
}

// ServerError encapsulates an HTTP server failure while preserving the
// original cause. This allows for structured error handling and inspection
// of what went wrong during server startup or shutdown.
type ServerError struct {
	// Message describes the failing operation.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message including the underlying cause.
func (e ServerError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError creates a new ServerError wrapping the given cause.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
