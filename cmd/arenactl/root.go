package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/arenakit/heap/alloc"
	"github.com/joshuapare/arenakit/internal/format"
	"github.com/joshuapare/arenakit/internal/logger"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	arenaSize int
	policy    string
)

var rootCmd = &cobra.Command{
	Use:   "arenactl",
	Short: "Replay allocation traces against a fixed-size arena",
	Long: `arenactl runs scripted alloc/free traces against a single fixed arena
and reports heap statistics, the block map and invariant checks.

Trace files hold one operation per line:

  alloc <name> <size>   allocate size bytes and bind the handle to name
  free <name>           free the block bound to name ("nil" frees the null handle)
  info                  print the heap summary
  map                   print the block map
  validate              check heap invariants

Blank lines and lines starting with # are ignored.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.Init(logger.Options{Enabled: true, Level: slog.LevelDebug})
			return
		}
		logger.FromEnv()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		IntVar(&arenaSize, "arena-size", format.DefaultArenaSize, "Arena size in bytes")
	rootCmd.PersistentFlags().
		StringVar(&policy, "policy", "next-fit", "Search policy (next-fit, first-fit, best-fit)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newAllocator creates an allocator from the global flags.
func newAllocator() (*alloc.Allocator, error) {
	p, err := parsePolicy(policy)
	if err != nil {
		return nil, err
	}
	return alloc.New(&alloc.Options{ArenaSize: arenaSize, Policy: p})
}

func parsePolicy(name string) (alloc.Policy, error) {
	for _, p := range []alloc.Policy{alloc.PolicyNextFit, alloc.PolicyFirstFit, alloc.PolicyBestFit} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown policy: %s (must be next-fit, first-fit, or best-fit)", name)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
