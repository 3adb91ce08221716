package main

import (
	"strings"
	"testing"
)

func TestRunCommand(t *testing.T) {
	trace := writeTrace(t,
		"alloc a 200",
		"alloc b 200",
		"free a",
		"alloc c 104",
		"alloc d 104",
	)

	tests := []struct {
		name           string
		policy         string
		json           bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:        "next-fit",
			policy:      "next-fit",
			wantContain: []string{"alloc a", "200 bytes at 2", "104 bytes at 406", "104 bytes at 2\n", "=== Heap Info"},
		},
		{
			name:           "first-fit",
			policy:         "first-fit",
			wantContain:    []string{"104 bytes at 2\n", "104 bytes at 406\n"},
			wantNotContain: []string{"error"},
		},
		{
			name:        "json",
			policy:      "next-fit",
			json:        true,
			wantJSON:    true,
			wantContain: []string{`"results"`, `"current_size": 414`, `"Splits"`},
		},
		{
			name:    "bad policy",
			policy:  "worst-fit",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			policy = tt.policy
			jsonOut = tt.json
			runValidate = true

			output, err := captureOutput(t, func() error {
				return runRun([]string{trace})
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("runRun: %v", err)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestInfoCommand(t *testing.T) {
	trace := writeTrace(t, "alloc a 200")

	resetFlags()
	output, err := captureOutput(t, func() error { return runInfo([]string{trace}) })
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	assertContains(t, output, []string{"Current Size: 202", "Blocks allocated: 1"})

	resetFlags()
	infoSummary = true
	infoLang = "de"
	arenaSize = 8192
	output, err = captureOutput(t, func() error { return runInfo([]string{trace}) })
	if err != nil {
		t.Fatalf("runInfo summary: %v", err)
	}
	assertContains(t, output, []string{"8.192 bytes", "7.990 to 7.990"})

	resetFlags()
	output, err = captureOutput(t, func() error { return runInfo(nil) })
	if err != nil {
		t.Fatalf("runInfo fresh: %v", err)
	}
	assertContains(t, output, []string{"Free Memory: 4096"})
}

func TestMapCommand(t *testing.T) {
	trace := writeTrace(t, "alloc a 200", "alloc b 16", "free a")

	resetFlags()
	output, err := captureOutput(t, func() error { return runMap([]string{trace}) })
	if err != nil {
		t.Fatalf("runMap: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 blocks, got %d:\n%s", len(lines), output)
	}
	assertContains(t, lines[0], []string{"0x0000", "FREE", "next=0x00DC"})
	assertContains(t, lines[1], []string{"0x00CA", "ALLOC"})

	resetFlags()
	mapAllocOnly = true
	output, err = captureOutput(t, func() error { return runMap([]string{trace}) })
	if err != nil {
		t.Fatalf("runMap alloc-only: %v", err)
	}
	assertNotContains(t, output, []string{"FREE"})

	resetFlags()
	jsonOut = true
	output, err = captureOutput(t, func() error { return runMap([]string{trace}) })
	if err != nil {
		t.Fatalf("runMap json: %v", err)
	}
	assertJSON(t, output)
}

func TestTraceFileMissing(t *testing.T) {
	resetFlags()
	if err := runRun([]string{"does-not-exist.txt"}); err == nil {
		t.Fatal("expected error for missing trace")
	}
}
