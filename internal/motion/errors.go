package motion

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates position matrices that do not match the time axis
	// or the marker count.
	ErrShape = errors.New("motion: position shape does not match time axis")

	// ErrFrameOutOfRange indicates a frame index outside the time axis.
	ErrFrameOutOfRange = errors.New("motion: frame index out of range")

	// ErrNonFinite indicates a NaN or infinite time or position sample.
	ErrNonFinite = errors.New("motion: non-finite sample")
)

// IndexError reports an invalid frame index against a series length.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("frame %d not in [0, %d): %v", e.Index, e.Len, ErrFrameOutOfRange)
}

func (e *IndexError) Unwrap() error {
	return ErrFrameOutOfRange
}

// WindowError reports a window end that does not fit the series. To must lie
// in (From, Len].
type WindowError struct {
	From, To int
	Len      int
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("window end %d not in (%d, %d]: %v", e.To, e.From, e.Len, ErrFrameOutOfRange)
}

func (e *WindowError) Unwrap() error {
	return ErrFrameOutOfRange
}
