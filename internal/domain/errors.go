package domain

import (
	"errors"
	"fmt"
)

// ErrNoteNotFound signals that no note exists for a requested id. The
// repository translates its driver's "no rows" condition into this error;
// the HTTP layer maps it to 404.
var ErrNoteNotFound = errors.New("note not found")

// ValidationError signals that an input payload violated a domain rule.
// Rule holds the human-readable description returned to the client.
type ValidationError struct {
	Rule string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Rule
}

// StorageError wraps any repository failure that is not a missing row.
// Driver-specific error types never cross the repository boundary directly.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
