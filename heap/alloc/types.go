package alloc

import (
	"github.com/joshuapare/arenakit/heap"
	"github.com/joshuapare/arenakit/internal/format"
)

// Ptr is an opaque handle to an allocated payload: the payload's byte
// offset within the arena. Only handles returned by Alloc on the same
// allocator are meaningful.
type Ptr uint16

// Nil is the null handle. Offset 0 always holds a block header, so no
// payload can start there.
const Nil Ptr = 0

// Policy selects the free-list search strategy.
type Policy uint8

const (
	// PolicyNextFit resumes the search where the previous allocation left off.
	PolicyNextFit Policy = iota

	// PolicyFirstFit always searches from the head of the free list.
	PolicyFirstFit

	// PolicyBestFit scans the whole free list for the smallest block that fits.
	PolicyBestFit
)

func (p Policy) String() string {
	switch p {
	case PolicyNextFit:
		return "next-fit"
	case PolicyFirstFit:
		return "first-fit"
	case PolicyBestFit:
		return "best-fit"
	default:
		return "unknown"
	}
}

// Options configures an allocator.
type Options struct {
	// ArenaSize is the fixed arena size in bytes.
	// Default: 4096
	ArenaSize int

	// Policy selects the search strategy.
	// Default: PolicyNextFit
	Policy Policy

	// Reserver acquires and releases the arena memory.
	// Default: heap.MmapReserver{}
	Reserver heap.Reserver
}

// DefaultOptions returns the options used when New is given nil.
func DefaultOptions() *Options {
	return &Options{
		ArenaSize: format.DefaultArenaSize,
		Policy:    PolicyNextFit,
		Reserver:  heap.MmapReserver{},
	}
}

// Chunk describes one free block.
type Chunk struct {
	Offset int // Header offset
	Len    int // Block length including header
}

// Counters records allocator activity since the last Init.
type Counters struct {
	AllocCalls       int // Alloc calls with a valid size
	FreeCalls        int // Free calls with a non-nil handle
	Splits           int // Free blocks split into allocated prefix and free suffix
	Donations        int // Allocations that absorbed a too-small remainder
	CoalesceForward  int // Merges with the following free block
	CoalesceBackward int // Merges with the preceding free block
	Recomputes       int // Full free-list scans for min/max chunk
	OutOfMemory      int // Allocations that failed after a full lap
}

// cursor is the next-fit position: next is the free block the next search
// starts at and prev its predecessor (format.NilOffset for the list head).
type cursor struct {
	prev int
	next int
}
