package printer

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/arenakit/heap"
	"github.com/joshuapare/arenakit/heap/alloc"
	"github.com/joshuapare/arenakit/internal/format"
)

// printInfoText prints the bordered report.
func (p *Printer) printInfoText(info alloc.Info) error {
	_, err := io.WriteString(p.writer, info.String())
	return err
}

// printBlocksText prints one line per block:
//
//	0x0000  ALLOC  payload=200   len=202
//	0x00CA  FREE   payload=3892  len=3894  next=nil
func (p *Printer) printBlocksText(data []byte) error {
	it := heap.NewBlockIterator(data)
	for {
		h, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("block map: %w", err)
		}
		if !p.show(h) {
			continue
		}

		line := fmt.Sprintf("0x%04X  %-5s  payload=%-5d len=%d", h.Offset, h.Tag, h.PayloadSize, h.Len())
		if h.Free() {
			line += "  next=" + nextString(h.Next)
		}
		if _, err := fmt.Fprintln(p.writer, line); err != nil {
			return err
		}
	}
}

// show applies the ShowFree/ShowAlloc filters.
func (p *Printer) show(h format.Header) bool {
	if h.Free() {
		return p.opts.ShowFree
	}
	return p.opts.ShowAlloc
}

func nextString(next int) string {
	if next == format.NilOffset {
		return "nil"
	}
	return fmt.Sprintf("0x%04X", next)
}
