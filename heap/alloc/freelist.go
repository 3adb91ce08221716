package alloc

import "github.com/joshuapare/arenakit/internal/format"

// Free list primitives. Offsets are header offsets; format.NilOffset stands
// for the dummy head when used as a predecessor and for the terminator when
// used as a successor.

// blockLen returns the length of the free block at off.
func (a *Allocator) blockLen(off int) int {
	return format.HeaderSize + int(format.ReadU16(a.arena.Bytes(), off)&format.SizeMask)
}

// nextFree returns the successor of the free block at off.
func (a *Allocator) nextFree(off int) int {
	return format.ReadNext(a.arena.Bytes(), off)
}

// link makes next the successor of prev.
func (a *Allocator) link(prev, next int) {
	if prev == format.NilOffset {
		a.head = next
		return
	}
	format.SetNext(a.arena.Bytes(), prev, next)
}

// FreeList returns the free blocks in list order.
func (a *Allocator) FreeList() []Chunk {
	if a.arena.Closed() {
		return nil
	}
	var chunks []Chunk
	for off := a.head; off != format.NilOffset; off = a.nextFree(off) {
		chunks = append(chunks, Chunk{Offset: off, Len: a.blockLen(off)})
	}
	return chunks
}

// Head returns the header offset of the first free block, or
// format.NilOffset when the arena is full.
func (a *Allocator) Head() int { return a.head }
