package alloc

import (
	"github.com/cockroachdb/errors"

	"github.com/joshuapare/arenakit/heap/verify"
	"github.com/joshuapare/arenakit/internal/format"
)

// Validate checks the arena structure and cross-checks the cached
// statistics and the next-fit cursor against a fresh walk. It is meant for
// tests and debugging; it is linear in the arena size.
func (a *Allocator) Validate() error {
	if a.arena.Closed() {
		return ErrClosed
	}
	data := a.arena.Bytes()
	if err := verify.AllInvariants(data, a.head); err != nil {
		return errors.Wrap(err, "alloc: heap structure")
	}

	sum, err := verify.Scan(data)
	if err != nil {
		return errors.Wrap(err, "alloc: heap scan")
	}
	if sum.BytesInUse != a.stats.bytesInUse {
		return errors.Newf("alloc: counted %d bytes in use, but statistics indicate %d", sum.BytesInUse, a.stats.bytesInUse)
	}
	if sum.BlockCount != a.stats.blockCount {
		return errors.Newf("alloc: counted %d allocated blocks, but statistics indicate %d", sum.BlockCount, a.stats.blockCount)
	}
	if sum.MinFreeChunk != a.stats.minFree || sum.MaxFreeChunk != a.stats.maxFree {
		return errors.Newf("alloc: free chunks range over [%d, %d], but statistics indicate [%d, %d]",
			sum.MinFreeChunk, sum.MaxFreeChunk, a.stats.minFree, a.stats.maxFree)
	}

	return a.validateCursor()
}

// validateCursor checks that the cursor names a listed block and its actual
// predecessor, or is empty when the list is.
func (a *Allocator) validateCursor() error {
	if a.cur.next == format.NilOffset {
		if a.head != format.NilOffset {
			return errors.Newf("alloc: cursor is unset but the free list starts at %d", a.head)
		}
		return nil
	}
	prev := format.NilOffset
	for off := a.head; off != format.NilOffset; prev, off = off, a.nextFree(off) {
		if off != a.cur.next {
			continue
		}
		if prev != a.cur.prev {
			return errors.Newf("alloc: cursor at %d records predecessor %d, but the list has %d", off, a.cur.prev, prev)
		}
		return nil
	}
	return errors.Newf("alloc: cursor points at %d, which is not on the free list", a.cur.next)
}
