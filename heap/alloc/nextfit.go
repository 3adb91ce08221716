package alloc

import (
	"fmt"
	"log/slog"

	"github.com/joshuapare/arenakit/internal/format"
	"github.com/joshuapare/arenakit/internal/logger"
)

// Alloc allocates size payload bytes and returns the handle and the payload
// slice. size must be positive, a multiple of 8 and representable in the
// 15-bit size field. The payload is not zeroed.
//
// A block whose remainder after the allocation could not hold a free header
// is handed out whole, so the payload may be slightly longer than size.
func (a *Allocator) Alloc(size int) (Ptr, []byte, error) {
	if a.arena.Closed() {
		return Nil, nil, ErrClosed
	}
	if size <= 0 {
		return Nil, nil, fmt.Errorf("%w: %d (must be positive)", ErrInvalidSize, size)
	}
	if !format.IsAligned(size) {
		return Nil, nil, fmt.Errorf("%w: %d (not a multiple of %d, try %d)", ErrInvalidSize, size, format.Align, format.Align8(size))
	}
	if size > format.MaxPayload {
		return Nil, nil, fmt.Errorf("%w: %d", ErrSizeTooLarge, size)
	}
	a.counts.AllocCalls++

	need := size + format.HeaderSize

	prev, off, ok := a.search(need)
	if !ok {
		a.counts.OutOfMemory++
		if logger.Enabled(slog.LevelDebug) {
			logger.Debug("alloc: out of memory",
				"need", need,
				"free_blocks", len(a.FreeList()),
				"free_bytes", a.arena.Size()-a.stats.bytesInUse,
				"largest", a.stats.maxFree,
			)
		}
		return Nil, nil, fmt.Errorf("%w: need %d bytes, largest free chunk %d", ErrOutOfMemory, need, a.stats.maxFree)
	}

	data := a.arena.Bytes()
	blen := a.blockLen(off)
	succ := a.nextFree(off)
	rem := blen - need

	var used, follow, followPrev int
	split := rem >= format.FreeHeaderSize
	if !split {
		// Donate the remainder: a fragment this small could never be reused.
		a.counts.Donations++
		used = blen
		if err := format.EncodeAlloc(data, off, blen-format.HeaderSize); err != nil {
			return Nil, nil, err
		}
		a.link(prev, succ)
		follow, followPrev = succ, prev
	} else {
		a.counts.Splits++
		used = need
		tail := off + need
		if err := format.EncodeAlloc(data, off, size); err != nil {
			return Nil, nil, err
		}
		if err := format.EncodeFree(data, tail, rem-format.HeaderSize, succ); err != nil {
			return Nil, nil, err
		}
		a.link(prev, tail)
		follow, followPrev = succ, tail
		logger.Debug("alloc: split", "off", off, "len", blen, "need", need, "remainder", rem)
	}

	// Resume after the block just consumed; wrap to the head past the tail.
	if follow == format.NilOffset {
		a.cur = cursor{prev: format.NilOffset, next: a.head}
	} else {
		a.cur = cursor{prev: followPrev, next: follow}
	}

	a.stats.blockCount++
	a.stats.bytesInUse += used
	switch {
	case blen == a.stats.minFree || blen == a.stats.maxFree:
		a.Recompute()
	case split && rem < a.stats.minFree:
		a.stats.minFree = rem
	}

	return Ptr(off + format.HeaderSize), data[off+format.HeaderSize : off+used], nil
}

// search returns the free block chosen by the configured policy and its
// predecessor.
func (a *Allocator) search(need int) (prev, off int, ok bool) {
	if a.head == format.NilOffset {
		return format.NilOffset, format.NilOffset, false
	}
	switch a.opts.Policy {
	case PolicyFirstFit:
		return a.searchFrom(format.NilOffset, a.head, need, false)
	case PolicyBestFit:
		return a.searchBest(need)
	default:
		prev, off = a.cur.prev, a.cur.next
		if off == format.NilOffset {
			prev, off = format.NilOffset, a.head
		}
		return a.searchFrom(prev, off, need, true)
	}
}

// searchFrom walks the list from start until a block of at least need bytes
// is found. With wrap set the walk continues at the head after the tail and
// gives up after one full lap.
func (a *Allocator) searchFrom(prev, start, need int, wrap bool) (int, int, bool) {
	off := start
	for {
		if a.blockLen(off) >= need {
			return prev, off, true
		}
		prev, off = off, a.nextFree(off)
		if off == format.NilOffset {
			if !wrap {
				return format.NilOffset, format.NilOffset, false
			}
			prev, off = format.NilOffset, a.head
		}
		if off == start {
			return format.NilOffset, format.NilOffset, false
		}
	}
}

// searchBest returns the smallest block of at least need bytes. Ties go to
// the lowest address.
func (a *Allocator) searchBest(need int) (int, int, bool) {
	bestPrev, best, bestLen := format.NilOffset, format.NilOffset, 0
	prev := format.NilOffset
	for off := a.head; off != format.NilOffset; prev, off = off, a.nextFree(off) {
		l := a.blockLen(off)
		if l < need || (best != format.NilOffset && l >= bestLen) {
			continue
		}
		bestPrev, best, bestLen = prev, off, l
		if l == need {
			break
		}
	}
	return bestPrev, best, best != format.NilOffset
}
