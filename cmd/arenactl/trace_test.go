package main

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/joshuapare/arenakit/heap/alloc"
	"github.com/joshuapare/arenakit/heap/printer"
)

func TestParseTrace(t *testing.T) {
	ops, err := parseTrace(strings.NewReader(`
# two blocks
alloc a 200
  alloc b 16
free a

info
map
validate
free nil
`))
	if err != nil {
		t.Fatalf("parseTrace: %v", err)
	}

	want := []Op{
		{Kind: OpAlloc, Name: "a", Size: 200, Line: 3},
		{Kind: OpAlloc, Name: "b", Size: 16, Line: 4},
		{Kind: OpFree, Name: "a", Line: 5},
		{Kind: OpInfo, Line: 7},
		{Kind: OpMap, Line: 8},
		{Kind: OpValidate, Line: 9},
		{Kind: OpFree, Name: "nil", Line: 10},
	}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d: %+v", len(ops), len(want), ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d: got %+v, want %+v", i, ops[i], want[i])
		}
	}
}

func TestParseTrace_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing size", "alloc a", "usage: alloc"},
		{"bad size", "alloc a big", `bad size "big"`},
		{"free without name", "free", "usage: free"},
		{"info with args", "info now", "takes no arguments"},
		{"unknown op", "realloc a 8", `unknown operation "realloc"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTrace(strings.NewReader(tt.input))
			if !errors.Is(err, ErrTraceSyntax) {
				t.Fatalf("expected ErrTraceSyntax, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q missing %q", err, tt.want)
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Errorf("error %q missing line number", err)
			}
		})
	}
}

func TestReplayer(t *testing.T) {
	a, err := alloc.New(nil)
	if err != nil {
		t.Fatalf("alloc.New: %v", err)
	}
	defer a.Teardown()

	r := newReplayer(a, printer.New(io.Discard, printer.DefaultOptions()), true)
	results, err := r.replay([]Op{
		{Kind: OpAlloc, Name: "a", Size: 200, Line: 1},
		{Kind: OpAlloc, Name: "b", Size: 200, Line: 2},
		{Kind: OpFree, Name: "a", Line: 3},
		{Kind: OpAlloc, Name: "c", Size: 8000, Line: 4},
		{Kind: OpAlloc, Name: "d", Size: 7, Line: 5},
		{Kind: OpFree, Name: "nil", Line: 6},
		{Kind: OpValidate, Line: 7},
	})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	if results[0].Ptr != 2 || results[1].Ptr != 204 {
		t.Errorf("unexpected pointers: %+v %+v", results[0], results[1])
	}
	if results[2].Ptr != 2 || results[2].Error != "" {
		t.Errorf("free a: %+v", results[2])
	}
	if !strings.Contains(results[3].Error, "out of memory") {
		t.Errorf("alloc c: expected out of memory, got %+v", results[3])
	}
	if !strings.Contains(results[4].Error, "invalid size") {
		t.Errorf("alloc d: expected invalid size, got %+v", results[4])
	}
	if results[5].Error != "" {
		t.Errorf("free nil: %+v", results[5])
	}
	if info := a.Info(); info.BlockCount != 1 {
		t.Errorf("expected 1 live block, got %d", info.BlockCount)
	}
}

func TestReplayer_UnknownName(t *testing.T) {
	a, err := alloc.New(nil)
	if err != nil {
		t.Fatalf("alloc.New: %v", err)
	}
	defer a.Teardown()

	r := newReplayer(a, printer.New(io.Discard, printer.DefaultOptions()), false)
	if _, err := r.exec(Op{Kind: OpFree, Name: "ghost", Line: 4}); err == nil {
		t.Fatal("expected error freeing unknown name")
	}

	if _, err := r.exec(Op{Kind: OpAlloc, Name: "a", Size: 8, Line: 5}); err != nil {
		t.Fatalf("alloc: %v", err)
	}
	if _, err := r.exec(Op{Kind: OpAlloc, Name: "a", Size: 8, Line: 6}); err == nil {
		t.Fatal("expected error rebinding a live name")
	}
}
