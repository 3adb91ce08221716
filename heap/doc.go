// Package heap owns the fixed-size arena that the allocator carves up.
//
// # Overview
//
// An Arena is a single contiguous byte buffer of fixed size, reserved once
// from a Reserver and released once on Close. It is never resized. Blocks
// are addressed by byte offset from the start of the arena.
//
// # Reservers
//
// The Reserver interface is the boundary to the operating system:
//
//   - MmapReserver: anonymous private mapping (mmap on unix, VirtualAlloc on
//     windows). This is the default.
//   - PoolReserver: pooled Go heap buffers from bytedance/gopkg mcache,
//     useful when many short-lived arenas are created.
//
// Any type implementing Reserve/Release can be supplied instead.
//
// # Blocks
//
// Once formatted by the allocator, the arena is tiled by blocks:
//
//	[hdr][payload....][hdr][payload..][hdr][payload......]
//	0                                                  Size()
//
// BlockIterator walks that tiling from offset 0:
//
//	it := a.Blocks()
//	for {
//	    h, err := it.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(h.Offset, h.Tag, h.PayloadSize)
//	}
//
// # Thread Safety
//
// Arena instances are not thread-safe. Reserve and release happen exactly
// once per instance.
package heap
