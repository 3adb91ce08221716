package alloc

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/format"
	"github.com/joshuapare/arenakit/internal/logger"
)

// Free returns the block behind p to the free list, merging it with a free
// block directly before and after it in the arena. Freeing Nil is a no-op.
//
// Handles that are out of bounds or do not refer to an allocated block are
// rejected with ErrBadPtr and leave the allocator untouched. A stale handle
// whose bytes have since been reused by another allocation cannot be told
// apart from a live one.
func (a *Allocator) Free(p Ptr) error {
	if p == Nil {
		return nil
	}
	h, err := a.allocated(p)
	if err != nil {
		return fmt.Errorf("free %d: %w", p, err)
	}
	a.counts.FreeCalls++

	off, blen := h.Offset, h.Len()

	// Find the free neighbours in address order: left is the last free block
	// before off, right the first one after it.
	listPrev, left, right := format.NilOffset, format.NilOffset, a.head
	for right != format.NilOffset && right < off {
		listPrev, left = left, right
		right = a.nextFree(right)
	}

	start, end := off, off+blen
	succ := right
	absorbedMin, absorbedMax := false, false
	absorb := func(l int) {
		absorbedMin = absorbedMin || l == a.stats.minFree
		absorbedMax = absorbedMax || l == a.stats.maxFree
	}

	hadFree := a.head != format.NilOffset
	cursorOnAbsorbed := false

	if right != format.NilOffset && right == end {
		rlen := a.blockLen(right)
		absorb(rlen)
		end += rlen
		succ = a.nextFree(right)
		cursorOnAbsorbed = a.cur.next == right
		a.counts.CoalesceForward++
	}

	if left != format.NilOffset && left+a.blockLen(left) == off {
		absorb(a.blockLen(left))
		start = left
		cursorOnAbsorbed = cursorOnAbsorbed || a.cur.next == left
		a.counts.CoalesceBackward++
	} else {
		listPrev = left
	}

	merged := end - start
	if err := format.EncodeFree(a.arena.Bytes(), start, merged-format.HeaderSize, succ); err != nil {
		return err
	}
	a.link(listPrev, start)

	switch {
	case a.cur.next == format.NilOffset:
		a.cur = cursor{prev: format.NilOffset, next: a.head}
	case cursorOnAbsorbed:
		a.cur = cursor{prev: listPrev, next: start}
	case a.cur.next == succ:
		a.cur.prev = start
	}

	a.stats.blockCount--
	a.stats.bytesInUse -= blen
	if absorbedMin || absorbedMax {
		a.Recompute()
	} else {
		if merged > a.stats.maxFree {
			a.stats.maxFree = merged
		}
		if !hadFree || merged < a.stats.minFree {
			a.stats.minFree = merged
		}
	}

	if merged != blen {
		logger.Debug("free: coalesced", "off", start, "len", merged, "freed", blen)
	}
	return nil
}
