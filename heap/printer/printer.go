// Package printer renders heap summaries and block maps.
package printer

import (
	"io"

	"golang.org/x/text/language"

	"github.com/joshuapare/arenakit/heap/alloc"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs the fixed bordered report and one line per block.
	FormatText Format = "text"

	// FormatJSON outputs JSON objects.
	FormatJSON Format = "json"

	// FormatSummary outputs a one-line summary with locale-aware numbers.
	FormatSummary Format = "summary"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, summary).
	// Default: FormatText
	Format Format

	// Language selects number formatting for FormatSummary.
	// Default: language.English
	Language language.Tag

	// ShowFree includes free blocks in block maps.
	// Default: true
	ShowFree bool

	// ShowAlloc includes allocated blocks in block maps.
	// Default: true
	ShowAlloc bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:    FormatText,
		Language:  language.English,
		ShowFree:  true,
		ShowAlloc: true,
	}
}

// Printer writes heap reports to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintInfo(a.Info())
//	p.PrintBlocks(a.Arena().Bytes())
func New(w io.Writer, opts Options) *Printer {
	return &Printer{writer: w, opts: opts}
}

// PrintInfo prints a heap summary.
func (p *Printer) PrintInfo(info alloc.Info) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printInfoJSON(info)
	case FormatSummary:
		return p.printInfoSummary(info)
	default:
		return p.printInfoText(info)
	}
}

// PrintBlocks prints the block map of a formatted arena in address order.
// Corrupt headers end the walk with an error after the blocks decoded so
// far have been written.
func (p *Printer) PrintBlocks(data []byte) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printBlocksJSON(data)
	default:
		return p.printBlocksText(data)
	}
}
