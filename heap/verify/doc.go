// Package verify provides validation functions for raw arena contents.
// These helpers back the allocator's self check and are used in tests to
// ensure heap invariants are maintained.
//
// # Overview
//
// The checks operate on raw arena bytes plus the free-list head, so they
// can be run against any arena regardless of which allocator formatted it.
//
// Validation categories:
//   - Tiling: headers decode and blocks cover the arena with no gap
//   - Coalesced: no two free blocks are adjacent
//   - FreeList: the list is sorted and holds every free block exactly once
//
// # Quick Start
//
//	if err := verify.AllInvariants(a.Arena().Bytes(), a.Head()); err != nil {
//	    fmt.Printf("heap corrupt: %v\n", err)
//	}
//
// Scan derives the heap summary from the arena alone. Comparing it with the
// allocator's cached statistics detects accounting drift:
//
//	sum, err := verify.Scan(a.Arena().Bytes())
//	if err == nil && sum.BytesInUse != a.Info().BytesInUse {
//	    fmt.Println("bytes in use out of sync")
//	}
//
// # ValidationError
//
// All validation functions return *ValidationError on failure:
//
//	type ValidationError struct {
//	    Type    string                 // Check that failed (e.g., "FreeList")
//	    Message string                 // Human-readable description
//	    Offset  int                    // Arena offset of the offending block (-1 if N/A)
//	    Details map[string]interface{} // Additional context
//	}
package verify
