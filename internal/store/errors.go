package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an identifier matches no row.
var ErrNotFound = errors.New("record not found")

// WriteError wraps a store-level failure of an insert, update, or delete.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store: %s failed: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ReadError wraps a store-level failure of a select.
type ReadError struct {
	Op  string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store: %s failed: %v", e.Op, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// IsWriteError reports whether err is a store write failure.
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}

// IsReadError reports whether err is a store read failure.
func IsReadError(err error) bool {
	var re *ReadError
	return errors.As(err, &re)
}
