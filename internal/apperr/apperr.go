// Package apperr defines the stable error kinds surfaced to HTTP callers.
// Services classify failures into one of these kinds so handlers never
// leak raw storage engine text onto the wire.
package apperr

import "errors"

var (
	// ErrValidation marks a missing or malformed required field.
	ErrValidation = errors.New("validation error")

	// ErrConflict marks a duplicate value for a unique field.
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks an operation whose target row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks a constraint violation or storage engine failure.
	ErrStorage = errors.New("storage error")
)

// Error pairs a stable kind with a caller-facing message and the
// underlying cause (kept for logs, never sent on the wire).
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a validation error with a caller-facing message.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

// Conflict returns a conflict error with a caller-facing message.
func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Msg: msg}
}

// NotFound returns a not-found error with a caller-facing message.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}

// Storage wraps an underlying storage failure with a caller-facing message.
func Storage(msg string, err error) error {
	return &Error{Kind: ErrStorage, Msg: msg, Err: err}
}

// Message extracts the caller-facing text of a classified error.
// Unclassified errors return Error() as-is.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Msg
	}
	return err.Error()
}
