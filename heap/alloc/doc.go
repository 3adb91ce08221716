// Package alloc provides a next-fit free-list allocator over a single fixed
// arena.
//
// # Overview
//
// The allocator carves variable-sized blocks out of one contiguous arena
// reserved at Init. Every block starts with a two-byte header holding a
// tag bit and the payload size. Free blocks additionally store the offset of
// the next free block, so the free list lives inside the arena and is kept
// in ascending address order.
//
// Handles are payload offsets (Ptr), never raw pointers. Nil is the null
// handle and freeing it is a no-op.
//
// # Usage Example
//
//	a, err := alloc.New(nil) // 4 KiB arena, next-fit
//	if err != nil {
//	    return err
//	}
//	defer a.Teardown()
//
//	p, buf, err := a.Alloc(200)
//	if err != nil {
//	    return err
//	}
//	copy(buf, "hello")
//
//	if err := a.Free(p); err != nil {
//	    return err
//	}
//	fmt.Print(a.Info())
//
// # Search Policies
//
// PolicyNextFit (the default) resumes each search at the free block after
// the one the previous allocation consumed and wraps around to the head
// once. PolicyFirstFit always starts at the head. PolicyBestFit scans the
// whole list for the smallest block that fits.
//
// # Splitting
//
// A request of n bytes needs a block of n+2 bytes. When the chosen block has
// at least 4 bytes to spare, the tail becomes a new free block that takes
// the original's place in the list. Otherwise the whole block is handed
// out and the slack is added to the payload.
//
// # Coalescing
//
// Free merges the released block with a free neighbour directly after it
// and a free neighbour directly before it. Two free blocks are therefore
// never adjacent in the arena.
//
// # Statistics
//
// Info reports capacity, bytes in use, bytes free, allocated block count and
// the smallest and largest free chunk. Chunk sizes include the header.
// The extremes are updated incrementally and recomputed by a full scan
// when a block equal to a cached extreme is consumed or merged away.
//
// # Thread Safety
//
// Allocator is not safe for concurrent use. Locked wraps one behind a mutex.
package alloc
