package format

import (
	"fmt"

	"github.com/joshuapare/arenakit/internal/buf"
)

// Tag distinguishes allocated blocks from free blocks.
type Tag uint8

const (
	// TagFree marks a block owned by the allocator and threaded on the free list.
	TagFree Tag = 0
	// TagAlloc marks a block owned by a caller.
	TagAlloc Tag = 1
)

func (t Tag) String() string {
	if t == TagAlloc {
		return "ALLOC"
	}
	return "FREE"
}

// Header is a decoded block header.
//
// Block layout:
//
//	[tag|size: 2 bytes][payload: PayloadSize bytes]
//
// For free blocks the first two payload bytes hold Next.
type Header struct {
	Offset      int // Offset of the header within the arena
	Tag         Tag
	PayloadSize int
	Next        int // Next free block offset, NilOffset when last or allocated
}

// Len returns the block length including its header.
func (h Header) Len() int { return HeaderSize + h.PayloadSize }

// End returns the offset one past the last byte of the block.
func (h Header) End() int { return h.Offset + h.Len() }

// Free reports whether the block is tagged free.
func (h Header) Free() bool { return h.Tag == TagFree }

// PayloadOffset returns the offset of the first payload byte.
func (h Header) PayloadOffset() int { return h.Offset + HeaderSize }

// Decode reads the block header at off. The whole block must lie inside b;
// free blocks must also be large enough to carry their next link.
func Decode(b []byte, off int) (Header, error) {
	if !buf.Has(b, off, HeaderSize) {
		return Header{}, fmt.Errorf("block at %d: %w", off, ErrTruncated)
	}
	word := buf.U16LE(b[off:])
	h := Header{
		Offset:      off,
		PayloadSize: int(word & SizeMask),
		Next:        NilOffset,
	}
	if word&TagMask != 0 {
		h.Tag = TagAlloc
	}
	if !buf.Has(b, off, h.Len()) {
		return Header{}, fmt.Errorf("block at %d: length %d exceeds arena: %w", off, h.Len(), ErrBadSize)
	}
	if h.Tag == TagFree {
		if h.PayloadSize < MinFreePayload {
			return Header{}, fmt.Errorf("block at %d: free payload %d: %w", off, h.PayloadSize, ErrBadSize)
		}
		h.Next = int(buf.U16LE(b[off+HeaderSize:]))
	}
	return h, nil
}

// EncodeAlloc writes an allocated header at off. Only the header word is
// written; payload bytes are left untouched.
func EncodeAlloc(b []byte, off, payload int) error {
	if payload < 0 || payload > MaxPayload {
		return fmt.Errorf("block at %d: payload %d: %w", off, payload, ErrSizeTooLarge)
	}
	if !buf.Has(b, off, HeaderSize+payload) {
		return fmt.Errorf("block at %d: %w", off, ErrBadSize)
	}
	PutU16(b, off, uint16(payload)|TagMask)
	return nil
}

// EncodeFree writes a free header and its next link at off.
func EncodeFree(b []byte, off, payload, next int) error {
	if payload > MaxPayload {
		return fmt.Errorf("block at %d: payload %d: %w", off, payload, ErrSizeTooLarge)
	}
	if payload < MinFreePayload || !buf.Has(b, off, HeaderSize+payload) {
		return fmt.Errorf("block at %d: free payload %d: %w", off, payload, ErrBadSize)
	}
	PutU16(b, off, uint16(payload))
	PutU16(b, off+HeaderSize, uint16(next))
	return nil
}

// ReadNext returns the next link of the free block at off. The caller must
// know off holds a free header.
func ReadNext(b []byte, off int) int {
	return int(ReadU16(b, off+HeaderSize))
}

// SetNext rewrites the next link of the free block at off.
func SetNext(b []byte, off, next int) {
	PutU16(b, off+HeaderSize, uint16(next))
}
