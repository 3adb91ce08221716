package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/heap/printer"
)

var runValidate bool

func init() {
	cmd := newRunCmd()
	cmd.Flags().BoolVar(&runValidate, "validate", false, "Check heap invariants after every alloc and free")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <trace>",
		Short: "Replay a trace and report every operation",
		Long: `The run command replays a trace file against a fresh arena and prints
the outcome of each allocation and free, followed by the final heap summary.

Example:
  arenactl run trace.txt
  arenactl run trace.txt --policy best-fit --validate
  arenactl run trace.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args)
		},
	}
	return cmd
}

func runRun(args []string) error {
	ops, err := loadTrace(args[0])
	if err != nil {
		return err
	}

	a, err := newAllocator()
	if err != nil {
		return err
	}
	defer a.Teardown()

	printVerbose("Replaying %d operations (%s, %d bytes)\n", len(ops), a.Policy(), a.Arena().Size())

	if jsonOut {
		// Embedded info/map output would break the JSON document.
		r := newReplayer(a, printer.New(io.Discard, printer.DefaultOptions()), runValidate)
		results, err := r.replay(ops)
		if err != nil {
			return err
		}
		return printJSON(map[string]interface{}{
			"results":  results,
			"info":     a.Info(),
			"counters": a.Counters(),
		})
	}

	r := newReplayer(a, printer.New(os.Stdout, printer.DefaultOptions()), runValidate)
	for _, op := range ops {
		res, err := r.exec(op)
		if err != nil {
			return err
		}
		switch {
		case res.Error != "":
			printInfo("%4d  %-5s %-8s  error: %s\n", res.Line, res.Op, res.Name, res.Error)
		case op.Kind == OpAlloc:
			printInfo("%4d  alloc %-8s  %d bytes at %d\n", res.Line, res.Name, res.Size, res.Ptr)
		case op.Kind == OpFree:
			printInfo("%4d  free  %-8s  %d\n", res.Line, res.Name, res.Ptr)
		}
	}

	printInfo("\n%s", a.Info())
	return nil
}
