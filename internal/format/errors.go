package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a header.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadSize indicates a declared block size that runs past the arena or
	// is smaller than the minimum block.
	ErrBadSize = errors.New("format: bad block size")
	// ErrSizeTooLarge indicates a payload size that does not fit the 15-bit field.
	ErrSizeTooLarge = errors.New("format: payload size too large for header")
)
