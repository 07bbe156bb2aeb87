package availability

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that a technician has no stored availability set. The
// caller seeds a default set; nothing about this is fatal.
var ErrNotFound = errors.New("availability set not found")

// InvalidInputError reports a malformed date string or an unrecognized slot
// name. Absence of a date is NOT invalid input — a date with no record is a
// valid, expected state.
type InvalidInputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func newInvalidDateError(value string) error {
	return &InvalidInputError{Field: "date", Value: value, Reason: "expected YYYY-MM-DD"}
}

func newInvalidSlotError(value string) error {
	return &InvalidInputError{Field: "slot", Value: value, Reason: `expected "morning" or "afternoon"`}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// StorageError wraps a failed persistence round trip. The previously loaded
// set remains the user-visible truth; the caller may retry the save.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("availability storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsStorageFailure reports whether err is a StorageError.
func IsStorageFailure(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
