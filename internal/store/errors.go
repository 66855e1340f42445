// ABOUTME: Storage error taxonomy.
// ABOUTME: ReadError and WriteError carry the slot and wrap the cause.

package store

import "fmt"

// ReadError reports malformed or unreadable persisted data.
type ReadError struct {
	Slot string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read slot %q: %v", e.Slot, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError reports a failed save.
type WriteError struct {
	Slot string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write slot %q: %v", e.Slot, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
