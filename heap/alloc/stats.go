package alloc

import (
	"fmt"
	"strings"

	"github.com/joshuapare/arenakit/internal/format"
	"github.com/joshuapare/arenakit/internal/logger"
)

// stats is the incrementally maintained heap summary. Chunk sizes are block
// lengths including the header, so bytesInUse plus the free chunks always
// add up to the arena size.
type stats struct {
	bytesInUse int
	blockCount int
	minFree    int
	maxFree    int
}

// Info is a point-in-time heap summary.
type Info struct {
	MaxCapacity  int `json:"max_size"`
	BytesInUse   int `json:"current_size"`
	BytesFree    int `json:"free_memory"`
	BlockCount   int `json:"blocks_allocated"`
	MinFreeChunk int `json:"smallest_available_chunk"`
	MaxFreeChunk int `json:"largest_available_chunk"`
}

const infoBorder = "=============================="

// String renders the fixed bordered report read by existing tooling.
func (i Info) String() string {
	var b strings.Builder
	b.WriteString("=== Heap Info ================\n")
	fmt.Fprintf(&b, "Max Size: %d\n", i.MaxCapacity)
	fmt.Fprintf(&b, "Current Size: %d\n", i.BytesInUse)
	fmt.Fprintf(&b, "Free Memory: %d\n", i.BytesFree)
	fmt.Fprintf(&b, "Blocks allocated: %d\n", i.BlockCount)
	fmt.Fprintf(&b, "Smallest available chunk: %d\n", i.MinFreeChunk)
	fmt.Fprintf(&b, "Largest available chunk: %d\n", i.MaxFreeChunk)
	b.WriteString(infoBorder + "\n")
	return b.String()
}

// Info returns the current heap summary. It has no side effects. After
// Teardown every field is zero.
func (a *Allocator) Info() Info {
	var capacity int
	if !a.arena.Closed() {
		capacity = a.arena.Size()
	}
	return Info{
		MaxCapacity:  capacity,
		BytesInUse:   a.stats.bytesInUse,
		BytesFree:    capacity - a.stats.bytesInUse,
		BlockCount:   a.stats.blockCount,
		MinFreeChunk: a.stats.minFree,
		MaxFreeChunk: a.stats.maxFree,
	}
}

// Counters returns activity counters since the last Init.
func (a *Allocator) Counters() Counters { return a.counts }

// Recompute rescans the free list and replaces the cached smallest and
// largest free chunk sizes.
func (a *Allocator) Recompute() {
	a.counts.Recomputes++
	a.stats.minFree, a.stats.maxFree = a.scanExtremes()
	logger.Debug("free chunk extremes recomputed", "min", a.stats.minFree, "max", a.stats.maxFree)
}

// scanExtremes returns the smallest and largest free block lengths. An empty
// list yields 0, 0. Free blocks always carry their next link, so no free
// chunk is ever shorter than format.MinBlockSize.
func (a *Allocator) scanExtremes() (minFree, maxFree int) {
	if a.arena.Closed() {
		return 0, 0
	}
	for off := a.head; off != format.NilOffset; off = a.nextFree(off) {
		l := a.blockLen(off)
		if l > maxFree {
			maxFree = l
		}
		if minFree == 0 || l < minFree {
			minFree = l
		}
	}
	return minFree, maxFree
}
