package heap

import (
	"errors"
	"fmt"
)

var (
	// ErrArenaSize indicates a requested arena size outside the supported range.
	ErrArenaSize = errors.New("heap: arena size out of range")

	// ErrShortReserve indicates a Reserver returned a buffer of the wrong length.
	ErrShortReserve = errors.New("heap: reserver returned wrong length")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("heap: arena closed")
)

// ArenaError reports a failure to reserve or release the backing memory.
// It is fatal to the arena instance.
type ArenaError struct {
	Op   string // "reserve" or "release"
	Size int    // Arena size in bytes
	Err  error  // Underlying cause
}

func (e *ArenaError) Error() string {
	return fmt.Sprintf("heap: %s arena of %d bytes: %v", e.Op, e.Size, e.Err)
}

func (e *ArenaError) Unwrap() error { return e.Err }
