package lazysorted

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by IndexOf when the value is not present.
var ErrNotFound = errors.New("value not found")

// ErrOutOfRange indicates a position outside [0, Len).
//
// It is returned by At, Slice and Between; the failed call has no side
// effects and never corrupts the structure.
type ErrOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// ErrCompare indicates that the comparator failed to order two elements.
//
// The in-progress selection is abandoned, but every boundary resolved before
// the failure remains valid: queries that only touch already-resolved
// positions keep succeeding, and the failed query may be retried.
//
// The comparator's error can be accessed via errors.Unwrap.
type ErrCompare struct {
	cause error
}

func (e *ErrCompare) Error() string {
	return fmt.Sprintf("compare: %v", e.cause)
}

func (e *ErrCompare) Unwrap() error { return e.cause }
