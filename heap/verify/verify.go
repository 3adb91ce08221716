package verify

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/arenakit/heap"
	"github.com/joshuapare/arenakit/internal/format"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Summary is the heap summary derived from a full walk of the arena.
type Summary struct {
	BytesInUse   int
	BlockCount   int
	FreeCount    int
	MinFreeChunk int
	MaxFreeChunk int
}

// AllInvariants validates all heap invariants in one call.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(data []byte, head int) error {
	if err := Tiling(data); err != nil {
		return err
	}
	if err := Coalesced(data); err != nil {
		return err
	}
	return FreeList(data, head)
}

// Tiling validates that decodable blocks cover the arena exactly, with the
// last block ending at the arena end.
func Tiling(data []byte) error {
	if len(data) < format.MinArenaSize {
		return &ValidationError{
			Type:    "Tiling",
			Message: fmt.Sprintf("arena too small: %d bytes (need %d)", len(data), format.MinArenaSize),
			Offset:  -1,
		}
	}

	it := heap.NewBlockIterator(data)
	for {
		_, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &ValidationError{
				Type:    "Tiling",
				Message: err.Error(),
				Offset:  it.Offset(),
			}
		}
	}
}

// Coalesced validates that no two free blocks are adjacent in the arena.
func Coalesced(data []byte) error {
	it := heap.NewBlockIterator(data)
	prevFree := -1
	for {
		h, err := it.Next()
		if err != nil {
			// Tiling reports decode failures.
			return nil
		}
		if h.Free() && prevFree >= 0 {
			return &ValidationError{
				Type:    "Coalesced",
				Message: fmt.Sprintf("free block follows free block at 0x%X", prevFree),
				Offset:  h.Offset,
				Details: map[string]interface{}{
					"previous": prevFree,
				},
			}
		}
		prevFree = -1
		if h.Free() {
			prevFree = h.Offset
		}
	}
}

// FreeList validates the free list starting at head. The list must hold
// exactly the free blocks found by walking the arena, in address order.
func FreeList(data []byte, head int) error {
	starts := make(map[int]format.Header)
	var free []int
	it := heap.NewBlockIterator(data)
	for {
		h, err := it.Next()
		if err != nil {
			break
		}
		starts[h.Offset] = h
		if h.Free() {
			free = append(free, h.Offset)
		}
	}

	i := 0
	last := -1
	for off := head; off != format.NilOffset; {
		h, ok := starts[off]
		switch {
		case !ok:
			return &ValidationError{
				Type:    "FreeList",
				Message: "link does not point at a block header",
				Offset:  off,
			}
		case !h.Free():
			return &ValidationError{
				Type:    "FreeList",
				Message: "listed block is allocated",
				Offset:  off,
			}
		case off <= last:
			return &ValidationError{
				Type:    "FreeList",
				Message: fmt.Sprintf("list not in address order: 0x%X after 0x%X", off, last),
				Offset:  off,
			}
		case i >= len(free) || free[i] != off:
			return &ValidationError{
				Type:    "FreeList",
				Message: "list skips a free block",
				Offset:  off,
			}
		}
		last = off
		i++
		off = h.Next
	}
	if i != len(free) {
		return &ValidationError{
			Type:    "FreeList",
			Message: fmt.Sprintf("%d free blocks missing from list", len(free)-i),
			Offset:  free[i],
			Details: map[string]interface{}{
				"listed": i,
				"free":   len(free),
			},
		}
	}
	return nil
}

// Scan walks the arena and derives the heap summary. Chunk sizes are block
// lengths including headers.
func Scan(data []byte) (Summary, error) {
	var s Summary
	it := heap.NewBlockIterator(data)
	for {
		h, err := it.Next()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return s, &ValidationError{Type: "Scan", Message: err.Error(), Offset: it.Offset()}
		}
		if !h.Free() {
			s.BlockCount++
			s.BytesInUse += h.Len()
			continue
		}
		s.FreeCount++
		if h.Len() > s.MaxFreeChunk {
			s.MaxFreeChunk = h.Len()
		}
		if s.MinFreeChunk == 0 || h.Len() < s.MinFreeChunk {
			s.MinFreeChunk = h.Len()
		}
	}
}
