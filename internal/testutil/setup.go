package testutil

import (
	"testing"

	"github.com/joshuapare/arenakit/heap"
)

// OpenArena reserves an mmap-backed arena of the given size and closes it
// when the test ends.
//
// Example:
//
//	a := testutil.OpenArena(t, 4096)
//	data := a.Bytes()
func OpenArena(t testing.TB, size int) *heap.Arena {
	t.Helper()
	a, err := heap.Open(size, heap.MmapReserver{})
	if err != nil {
		t.Fatalf("Failed to open arena: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := a.Close(); closeErr != nil {
			t.Errorf("Failed to close arena: %v", closeErr)
		}
	})
	return a
}

// Fill writes a repeating byte pattern into payload.
func Fill(payload []byte, pattern byte) {
	for i := range payload {
		payload[i] = pattern
	}
}

// CheckFilled fails the test if any payload byte differs from pattern.
func CheckFilled(t testing.TB, payload []byte, pattern byte) {
	t.Helper()
	for i, b := range payload {
		if b != pattern {
			t.Fatalf("payload corrupted at byte %d: got 0x%02X want 0x%02X", i, b, pattern)
		}
	}
}
