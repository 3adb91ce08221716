package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Info_String(t *testing.T) {
	a := newTestAllocator(t, 4096, PolicyNextFit)

	want := "=== Heap Info ================\n" +
		"Max Size: 4096\n" +
		"Current Size: 0\n" +
		"Free Memory: 4096\n" +
		"Blocks allocated: 0\n" +
		"Smallest available chunk: 4096\n" +
		"Largest available chunk: 4096\n" +
		"==============================\n"
	require.Equal(t, want, a.Info().String())

	mustAlloc(t, a, 200)
	require.Contains(t, a.Info().String(), "Current Size: 202\n")
	require.Contains(t, a.Info().String(), "Largest available chunk: 3894\n")
}

func Test_Info_NoSideEffects(t *testing.T) {
	a := newTestAllocator(t, 4096, PolicyNextFit)
	mustAlloc(t, a, 200)

	counts := a.Counters()
	first := a.Info()
	require.Equal(t, first, a.Info())
	require.Equal(t, counts, a.Counters())
}

func Test_Stats_SplitSuffixBecomesMinimum(t *testing.T) {
	a := newTestAllocator(t, 4096, PolicyFirstFit)

	pa := mustAlloc(t, a, 200) // [0,202)
	mustAlloc(t, a, 8)         // [202,212)
	pc := mustAlloc(t, a, 296) // [212,510)
	mustAlloc(t, a, 8)         // [510,520)
	require.NoError(t, a.Free(pa))
	require.NoError(t, a.Free(pc))
	require.Equal(t, 202, a.Info().MinFreeChunk)

	recomputes := a.Counters().Recomputes

	// 282 bytes skip the 202-byte hole and split the 298-byte one, leaving a
	// 16-byte suffix that is smaller than every cached extreme.
	require.Equal(t, Ptr(214), mustAlloc(t, a, 280))
	require.Equal(t, 16, a.Info().MinFreeChunk)
	require.Equal(t, recomputes, a.Counters().Recomputes, "no rescan needed")
	requireHeapValid(t, a)
}

func Test_Stats_ExactFitKeepsMinimum(t *testing.T) {
	a := newTestAllocator(t, 4096, PolicyFirstFit)

	pa := mustAlloc(t, a, 200) // [0,202)
	mustAlloc(t, a, 8)         // [202,212)
	pc := mustAlloc(t, a, 96)  // [212,310)
	mustAlloc(t, a, 8)         // [310,320)
	require.NoError(t, a.Free(pa))
	require.NoError(t, a.Free(pc))
	require.Equal(t, []Chunk{{Offset: 0, Len: 202}, {Offset: 212, Len: 98}, {Offset: 320, Len: 3776}}, a.FreeList())
	require.Equal(t, 98, a.Info().MinFreeChunk)

	recomputes := a.Counters().Recomputes

	// 200 bytes fill the 202-byte hole exactly; it is neither extreme.
	require.Equal(t, pa, mustAlloc(t, a, 200))
	require.Equal(t, []Chunk{{Offset: 212, Len: 98}, {Offset: 320, Len: 3776}}, a.FreeList())

	info := a.Info()
	require.Equal(t, 98, info.MinFreeChunk)
	require.Equal(t, 3776, info.MaxFreeChunk)
	require.Equal(t, recomputes, a.Counters().Recomputes, "no rescan needed")
	require.Contains(t, info.String(), "Smallest available chunk: 98\n")
	requireHeapValid(t, a)
}

func Test_Stats_RecomputeWhenExtremeConsumed(t *testing.T) {
	a := newTestAllocator(t, 4096, PolicyFirstFit)

	pa := mustAlloc(t, a, 200)
	mustAlloc(t, a, 8)
	require.NoError(t, a.Free(pa))
	require.Equal(t, 202, a.Info().MinFreeChunk)

	recomputes := a.Counters().Recomputes
	mustAlloc(t, a, 192) // takes the 202-byte minimum, leaving 8 bytes
	require.Equal(t, recomputes+1, a.Counters().Recomputes)
	require.Equal(t, 8, a.Info().MinFreeChunk)
	requireHeapValid(t, a)
}

func Test_Stats_RecomputeWhenExtremeMerged(t *testing.T) {
	a := newTestAllocator(t, 4096, PolicyNextFit)

	pa := mustAlloc(t, a, 200)
	pb := mustAlloc(t, a, 8)
	mustAlloc(t, a, 8)
	require.NoError(t, a.Free(pa))
	require.Equal(t, 202, a.Info().MinFreeChunk)

	recomputes := a.Counters().Recomputes
	require.NoError(t, a.Free(pb)) // absorbs the 202-byte minimum
	require.Equal(t, recomputes+1, a.Counters().Recomputes)
	require.Equal(t, 212, a.Info().MinFreeChunk)
	requireHeapValid(t, a)
}

func Test_Recompute_EmptyList(t *testing.T) {
	a := newTestAllocator(t, 1028, PolicyNextFit)
	mustAlloc(t, a, 1024)

	a.Recompute()
	info := a.Info()
	require.Zero(t, info.MinFreeChunk)
	require.Zero(t, info.MaxFreeChunk)
}
