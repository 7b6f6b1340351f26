// ABOUTME: Error taxonomy for fitness data storage.
// ABOUTME: Defines NotFound, malformed-input, and duplicate-date errors.
package storage

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound signals a missing storage source. Callers treat it as an empty
// table, never as fatal.
var ErrNotFound = errors.New("not found")

// MalformedInputError reports a structurally invalid row that could not be
// recovered during load, such as an unparseable date.
type MalformedInputError struct {
	Source string
	Line   int
	Err    error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input in %s line %d: %v", e.Source, e.Line, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}

// DuplicateDateError reports two daily records sharing one date, which
// violates the one-record-per-date invariant. Bulk replaces carrying a
// duplicate are rejected whole.
type DuplicateDateError struct {
	Date time.Time
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("duplicate daily record for date %s", e.Date.Format("2006-01-02"))
}
