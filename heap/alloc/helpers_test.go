package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/arenakit/internal/format"
)

// newTestAllocator creates an allocator over a fresh arena and tears it down
// when the test ends.
func newTestAllocator(t testing.TB, size int, policy Policy) *Allocator {
	t.Helper()

	a, err := New(&Options{ArenaSize: size, Policy: policy})
	require.NoError(t, err, "failed to create allocator")
	t.Cleanup(func() { _ = a.Teardown() })

	return a
}

// mustAlloc allocates size bytes and fails the test on error.
func mustAlloc(t testing.TB, a *Allocator, size int) Ptr {
	t.Helper()

	p, buf, err := a.Alloc(size)
	require.NoError(t, err, "Alloc(%d)", size)
	require.NotEqual(t, Nil, p)
	require.GreaterOrEqual(t, len(buf), size)
	return p
}

// requireHeapValid runs the full structural and accounting check and also
// confirms that every arena byte is accounted for exactly once.
func requireHeapValid(t testing.TB, a *Allocator) {
	t.Helper()

	require.NoError(t, a.Validate())

	free := 0
	for _, c := range a.FreeList() {
		free += c.Len
	}
	info := a.Info()
	require.Equal(t, info.MaxCapacity, info.BytesInUse+free, "in use + free must cover the arena")
	require.Equal(t, info.BytesFree, free)
}

// headerAt decodes the block header that precedes p.
func headerAt(t testing.TB, a *Allocator, p Ptr) format.Header {
	t.Helper()

	h, err := format.Decode(a.Arena().Bytes(), int(p)-format.HeaderSize)
	require.NoError(t, err)
	return h
}
