package printer

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/arenakit/heap/alloc"
)

// printInfoSummary prints a single line such as
//
//	4,096 bytes: 202 in use (4.9%), 1 blocks, free chunks 3,894 to 3,894 bytes
//
// with digit grouping and decimal separator taken from Options.Language.
func (p *Printer) printInfoSummary(info alloc.Info) error {
	tag := p.opts.Language
	if tag == language.Und {
		tag = language.English
	}
	mp := message.NewPrinter(tag)

	pct := 0.0
	if info.MaxCapacity > 0 {
		pct = 100 * float64(info.BytesInUse) / float64(info.MaxCapacity)
	}
	_, err := mp.Fprintf(p.writer, "%d bytes: %d in use (%.1f%%), %d blocks, free chunks %d to %d bytes\n",
		info.MaxCapacity, info.BytesInUse, pct, info.BlockCount, info.MinFreeChunk, info.MaxFreeChunk)
	return err
}
