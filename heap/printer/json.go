package printer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/arenakit/heap"
	"github.com/joshuapare/arenakit/heap/alloc"
	"github.com/joshuapare/arenakit/internal/format"
)

// jsonBlock represents one block in JSON format.
type jsonBlock struct {
	Offset      int    `json:"offset"`
	Tag         string `json:"tag"`
	PayloadSize int    `json:"payload_size"`
	Len         int    `json:"len"`
	Next        *int   `json:"next,omitempty"`
}

// printInfoJSON prints the summary as a JSON object.
func (p *Printer) printInfoJSON(info alloc.Info) error {
	return p.writeJSON(info)
}

// printBlocksJSON prints the block map as a JSON array. Nothing is written
// when a header is corrupt.
func (p *Printer) printBlocksJSON(data []byte) error {
	blocks := []jsonBlock{}
	it := heap.NewBlockIterator(data)
	for {
		h, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("block map: %w", err)
		}
		if !p.show(h) {
			continue
		}

		b := jsonBlock{
			Offset:      h.Offset,
			Tag:         h.Tag.String(),
			PayloadSize: h.PayloadSize,
			Len:         h.Len(),
		}
		if h.Free() && h.Next != format.NilOffset {
			next := h.Next
			b.Next = &next
		}
		blocks = append(blocks, b)
	}
	return p.writeJSON(blocks)
}

func (p *Printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
