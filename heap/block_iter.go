package heap

import (
	"fmt"
	"io"

	"github.com/joshuapare/arenakit/internal/format"
)

// BlockIterator walks the blocks of a formatted arena in address order.
type BlockIterator struct {
	data []byte
	off  int
	done bool
}

// NewBlockIterator returns an iterator starting at offset 0 of data.
func NewBlockIterator(data []byte) *BlockIterator {
	return &BlockIterator{data: data}
}

// Next returns the next block header, io.EOF after the last block, or an
// error when a header is corrupt. The iterator stops after any error.
func (it *BlockIterator) Next() (format.Header, error) {
	if it.done || it.off >= len(it.data) {
		it.done = true
		return format.Header{}, io.EOF
	}

	h, err := format.Decode(it.data, it.off)
	if err != nil {
		it.done = true
		return format.Header{}, err
	}
	if h.Len() < format.MinBlockSize {
		it.done = true
		return format.Header{}, fmt.Errorf("heap: block at %d has length %d below minimum %d", it.off, h.Len(), format.MinBlockSize)
	}

	it.off = h.End()
	return h, nil
}

// Offset returns the offset the next call to Next will decode.
func (it *BlockIterator) Offset() int { return it.off }
