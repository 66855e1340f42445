// ABOUTME: Import format errors for structured backups.
// ABOUTME: FormatError wraps the sentinel describing why a document was rejected.

package transcode

import (
	"errors"
	"fmt"
)

var (
	ErrNotArray     = errors.New("backup is not an array of notes")
	ErrNoValidNotes = errors.New("backup contains no valid notes")
)

// FormatError reports a backup document that cannot be imported at all.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("import failed: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
