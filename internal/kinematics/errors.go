package kinematics

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewSamples indicates a time axis too short to differentiate.
	ErrTooFewSamples = errors.New("kinematics: at least 2 samples required")

	// ErrNotMonotonic indicates a time axis that is not strictly increasing.
	ErrNotMonotonic = errors.New("kinematics: time axis not strictly increasing")

	// ErrLengthMismatch indicates values and time of different lengths.
	ErrLengthMismatch = errors.New("kinematics: values and time length mismatch")
)

// ComputeError wraps a derivation failure with the sample index where it was
// detected. Index is -1 when the failure is not tied to a sample.
type ComputeError struct {
	Op      string
	Index   int
	Wrapped error
}

func (e *ComputeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: sample %d: %v", e.Op, e.Index, e.Wrapped)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
}

func (e *ComputeError) Unwrap() error {
	return e.Wrapped
}
