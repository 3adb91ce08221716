package alloc

import (
	"errors"
	"fmt"

	"github.com/joshuapare/arenakit/heap"
)

var (
	// ErrInvalidSize indicates a requested size that is not positive or not a
	// multiple of the alignment unit.
	ErrInvalidSize = errors.New("alloc: invalid size")

	// ErrSizeTooLarge indicates a requested size the 15-bit header field
	// cannot represent. It matches ErrInvalidSize under errors.Is.
	ErrSizeTooLarge = fmt.Errorf("%w: too large for header", ErrInvalidSize)

	// ErrOutOfMemory indicates that no free block large enough was found
	// after a full lap of the free list.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadPtr indicates a handle outside the arena or not referring to an
	// allocated block.
	ErrBadPtr = errors.New("alloc: bad pointer")

	// ErrClosed indicates use of the allocator after Teardown. It matches
	// heap.ErrClosed under errors.Is.
	ErrClosed = fmt.Errorf("alloc: allocator torn down: %w", heap.ErrClosed)
)
