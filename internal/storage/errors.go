package storage

import (
	"errors"
	"fmt"

	"github.com/san-kum/jumpviz/internal/motion"
)

var (
	// ErrMissingFile indicates a marker file that does not exist.
	ErrMissingFile = errors.New("storage: marker file missing")

	// ErrMalformed indicates non-numeric content or too few columns.
	ErrMalformed = errors.New("storage: malformed marker table")

	// ErrEmpty indicates a marker file without samples.
	ErrEmpty = errors.New("storage: marker file has no samples")

	// ErrRowMismatch indicates marker files of one recording with different
	// sample counts.
	ErrRowMismatch = errors.New("storage: marker row counts differ")
)

// LoadError wraps a failure to load one recording. Marker is -1 when the
// failure concerns the recording as a whole.
type LoadError struct {
	Key     motion.Key
	Marker  motion.Marker
	Path    string
	Wrapped error
}

func (e *LoadError) Error() string {
	if e.Marker < 0 {
		return fmt.Sprintf("load %s: %v", e.Key, e.Wrapped)
	}
	return fmt.Sprintf("load %s marker_%d (%s): %v", e.Key, int(e.Marker)+1, e.Marker, e.Wrapped)
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}
