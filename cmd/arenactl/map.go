package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/heap/printer"
)

var (
	mapFreeOnly  bool
	mapAllocOnly bool
)

func init() {
	cmd := newMapCmd()
	cmd.Flags().BoolVar(&mapFreeOnly, "free-only", false, "Show only free blocks")
	cmd.Flags().BoolVar(&mapAllocOnly, "alloc-only", false, "Show only allocated blocks")
	cmd.MarkFlagsMutuallyExclusive("free-only", "alloc-only")
	rootCmd.AddCommand(cmd)
}

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map [trace]",
		Short: "Print the block map after replaying a trace",
		Long: `The map command replays an optional trace silently and prints every
block in the arena in address order with its tag, payload size, length and,
for free blocks, the next free offset.

Example:
  arenactl map trace.txt
  arenactl map trace.txt --free-only
  arenactl map trace.txt --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(args)
		},
	}
	return cmd
}

func runMap(args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	ops, err := loadTrace(path)
	if err != nil {
		return err
	}

	a, err := newAllocator()
	if err != nil {
		return err
	}
	defer a.Teardown()

	if _, err := newReplayer(a, printer.New(io.Discard, printer.DefaultOptions()), false).replay(ops); err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.ShowFree = !mapAllocOnly
	opts.ShowAlloc = !mapFreeOnly
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts).PrintBlocks(a.Arena().Bytes())
}
