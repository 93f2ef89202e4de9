package appicon

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration validation and encoding.
var (
	// ErrNoSizes is returned when the size list is empty.
	ErrNoSizes = errors.New("appicon: no sizes")

	// ErrInvalidSize is returned for sizes outside 1..256.
	ErrInvalidSize = errors.New("appicon: invalid size")

	// ErrDuplicateSize is returned when a size appears twice.
	ErrDuplicateSize = errors.New("appicon: duplicate size")

	// ErrNoFilename is returned when the output file name is empty.
	ErrNoFilename = errors.New("appicon: empty output file name")

	// ErrNoFrames is returned when encoding an empty canvas list.
	ErrNoFrames = errors.New("appicon: no frames to encode")
)

// SizeError reports which entry of the size list was rejected.
type SizeError struct {
	Index int
	Size  int
	Err   error
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: sizes[%d] = %d", e.Err, e.Index, e.Size)
}

func (e *SizeError) Unwrap() error {
	return e.Err
}
