package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/joshuapare/arenakit/heap/printer"
)

var (
	infoSummary bool
	infoLang    string
)

func init() {
	cmd := newInfoCmd()
	cmd.Flags().BoolVar(&infoSummary, "summary", false, "Print a one-line summary")
	cmd.Flags().StringVar(&infoLang, "lang", "en", "Language for number formatting in the summary")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [trace]",
		Short: "Report heap statistics after replaying a trace",
		Long: `The info command replays an optional trace silently and prints the
resulting heap statistics. Without a trace it reports a fresh arena.

Example:
  arenactl info
  arenactl info trace.txt --json
  arenactl info trace.txt --summary --lang de`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
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
	switch {
	case jsonOut:
		opts.Format = printer.FormatJSON
	case infoSummary:
		tag, err := language.Parse(infoLang)
		if err != nil {
			return fmt.Errorf("bad language %q: %w", infoLang, err)
		}
		opts.Format = printer.FormatSummary
		opts.Language = tag
	}
	return printer.New(os.Stdout, opts).PrintInfo(a.Info())
}
