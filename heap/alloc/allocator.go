package alloc

import (
	"github.com/joshuapare/arenakit/heap"
	"github.com/joshuapare/arenakit/internal/buf"
	"github.com/joshuapare/arenakit/internal/format"
	"github.com/joshuapare/arenakit/internal/logger"
)

// Allocator serves Alloc/Free requests from a single fixed arena.
//
// The free list is threaded through the arena itself: every free block's
// header carries the offset of the next free block in address order. The
// allocator only keeps the list head, the next-fit cursor and the cached
// statistics.
type Allocator struct {
	arena  *heap.Arena
	opts   Options
	head   int    // First free block, or format.NilOffset
	cur    cursor // Next-fit position
	stats  stats
	counts Counters
}

// New reserves an arena and formats it as a single free block.
//
// Parameters:
//   - opts: arena size, search policy and reserver (nil for DefaultOptions)
func New(opts *Options) (*Allocator, error) {
	a := &Allocator{opts: *DefaultOptions()}
	if opts != nil {
		if opts.ArenaSize != 0 {
			a.opts.ArenaSize = opts.ArenaSize
		}
		a.opts.Policy = opts.Policy
		if opts.Reserver != nil {
			a.opts.Reserver = opts.Reserver
		}
	}
	if err := a.Init(); err != nil {
		return nil, err
	}
	return a, nil
}

// Init reserves the arena if it is not held and resets it to one free block
// spanning the whole arena. Statistics, counters and the cursor are reset.
// Outstanding handles become invalid.
func (a *Allocator) Init() error {
	if a.arena.Closed() {
		ar, err := heap.Open(a.opts.ArenaSize, a.opts.Reserver)
		if err != nil {
			return err
		}
		a.arena = ar
	}

	size := a.arena.Size()
	if err := format.EncodeFree(a.arena.Bytes(), 0, size-format.HeaderSize, format.NilOffset); err != nil {
		return err
	}
	a.head = 0
	a.cur = cursor{prev: format.NilOffset, next: 0}
	a.stats = stats{minFree: size, maxFree: size}
	a.counts = Counters{}

	logger.Debug("allocator initialized", "size", size, "policy", a.opts.Policy.String())
	return nil
}

// Teardown releases the arena and clears the statistics. Alloc and Free
// fail with ErrClosed until Init is called again.
func (a *Allocator) Teardown() error {
	if a.arena.Closed() {
		return nil
	}
	a.head = format.NilOffset
	a.cur = cursor{prev: format.NilOffset, next: format.NilOffset}
	a.stats = stats{}
	if err := a.arena.Close(); err != nil {
		logger.Warn("allocator teardown: release failed", "size", a.arena.Size(), "err", err)
		return err
	}
	return nil
}

// Arena returns the underlying arena.
func (a *Allocator) Arena() *heap.Arena { return a.arena }

// Policy returns the configured search policy.
func (a *Allocator) Policy() Policy { return a.opts.Policy }

// Payload returns the payload bytes of an allocated block, or nil if p does
// not refer to one.
func (a *Allocator) Payload(p Ptr) []byte {
	h, err := a.allocated(p)
	if err != nil {
		return nil
	}
	b, _ := buf.Slice(a.arena.Bytes(), h.PayloadOffset(), h.PayloadSize)
	return b
}

// allocated decodes the header behind p and checks that it is in bounds
// and tagged allocated.
func (a *Allocator) allocated(p Ptr) (format.Header, error) {
	if a.arena.Closed() {
		return format.Header{}, ErrClosed
	}
	off := int(p) - format.HeaderSize
	if p == Nil || off < 0 {
		return format.Header{}, ErrBadPtr
	}
	h, err := format.Decode(a.arena.Bytes(), off)
	if err != nil || h.Tag != format.TagAlloc {
		return format.Header{}, ErrBadPtr
	}
	return h, nil
}
