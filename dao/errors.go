package dao

import "errors"

var (
	// ErrNotFound means an operation referenced a non-existent record id.
	ErrNotFound = errors.New("record not found")
	// ErrUnauthenticated means a mutating call carried no acting user, or
	// the acting user does not own the record.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidTransition means a status change the state machine forbids.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError names a required field that was missing or malformed
// at creation time.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "invalid or missing field: " + e.Field
}
