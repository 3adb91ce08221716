package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/joshuapare/arenakit/heap/alloc"
	"github.com/joshuapare/arenakit/internal/format"
)

// newTestHeap returns a 4 KiB heap holding one 200-byte allocation.
func newTestHeap(t *testing.T) *alloc.Allocator {
	t.Helper()

	a, err := alloc.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Teardown() })

	_, _, err = a.Alloc(200)
	require.NoError(t, err)
	return a
}

func TestPrinter_PrintInfo_Text(t *testing.T) {
	a := newTestHeap(t)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintInfo(a.Info()))
	require.Equal(t, a.Info().String(), buf.String())
	require.True(t, strings.HasPrefix(buf.String(), "=== Heap Info"))
}

func TestPrinter_PrintInfo_JSON(t *testing.T) {
	a := newTestHeap(t)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintInfo(a.Info()))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, map[string]int{
		"max_size":                 4096,
		"current_size":             202,
		"free_memory":              3894,
		"blocks_allocated":         1,
		"smallest_available_chunk": 3894,
		"largest_available_chunk":  3894,
	}, got)
}

func TestPrinter_PrintInfo_Summary(t *testing.T) {
	a := newTestHeap(t)

	tests := []struct {
		lang language.Tag
		want string
	}{
		{language.English, "4,096 bytes: 202 in use (4.9%), 1 blocks, free chunks 3,894 to 3,894 bytes\n"},
		{language.German, "4.096 bytes: 202 in use (4,9%), 1 blocks, free chunks 3.894 to 3.894 bytes\n"},
		{language.Und, "4,096 bytes: 202 in use (4.9%), 1 blocks, free chunks 3,894 to 3,894 bytes\n"},
	}
	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			var buf bytes.Buffer
			opts := DefaultOptions()
			opts.Format = FormatSummary
			opts.Language = tt.lang
			require.NoError(t, New(&buf, opts).PrintInfo(a.Info()))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_PrintBlocks_Text(t *testing.T) {
	a := newTestHeap(t)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintBlocks(a.Arena().Bytes()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "0x0000  ALLOC  payload=200"), lines[0])
	require.Contains(t, lines[0], "len=202")
	require.True(t, strings.HasPrefix(lines[1], "0x00CA  FREE   payload=3892"), lines[1])
	require.True(t, strings.HasSuffix(lines[1], "next=nil"), lines[1])
}

func TestPrinter_PrintBlocks_Filters(t *testing.T) {
	a := newTestHeap(t)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowFree = false
	require.NoError(t, New(&buf, opts).PrintBlocks(a.Arena().Bytes()))
	require.NotContains(t, buf.String(), "FREE")
	require.Contains(t, buf.String(), "ALLOC")

	buf.Reset()
	opts = DefaultOptions()
	opts.ShowAlloc = false
	require.NoError(t, New(&buf, opts).PrintBlocks(a.Arena().Bytes()))
	require.NotContains(t, buf.String(), "ALLOC")
	require.Contains(t, buf.String(), "FREE")
}

func TestPrinter_PrintBlocks_JSON(t *testing.T) {
	a, err := alloc.New(&alloc.Options{ArenaSize: 256})
	require.NoError(t, err)
	defer a.Teardown()

	p, _, err := a.Alloc(32)
	require.NoError(t, err)
	_, _, err = a.Alloc(32)
	require.NoError(t, err)
	require.NoError(t, a.Free(p))

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(&buf, opts).PrintBlocks(a.Arena().Bytes()))

	var got []jsonBlock
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)

	next := 68
	require.Equal(t, jsonBlock{Offset: 0, Tag: "FREE", PayloadSize: 32, Len: 34, Next: &next}, got[0])
	require.Equal(t, jsonBlock{Offset: 34, Tag: "ALLOC", PayloadSize: 32, Len: 34}, got[1])
	require.Equal(t, jsonBlock{Offset: 68, Tag: "FREE", PayloadSize: 186, Len: 188}, got[2])
}

func TestPrinter_PrintBlocks_Corrupt(t *testing.T) {
	data := make([]byte, 64)
	require.NoError(t, format.EncodeAlloc(data, 0, 14))
	format.PutU16(data, 16, 200) // free block running past the end

	var buf bytes.Buffer
	err := New(&buf, DefaultOptions()).PrintBlocks(data)
	require.ErrorIs(t, err, format.ErrBadSize)
	require.Contains(t, buf.String(), "0x0000  ALLOC", "blocks before the corruption are printed")

	buf.Reset()
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.Error(t, New(&buf, opts).PrintBlocks(data))
	require.Empty(t, buf.String())
}
