// Package format houses the low-level codec for arena block headers. Every
// block in an arena starts with a two-byte header word; free blocks carry an
// additional two-byte link to the next free block. The package is
// allocation-free and independent from the allocator so higher-level
// packages can walk and validate raw arena bytes directly.
package format

const (
	// HeaderSize is the size of an allocated block header (AllocHeader).
	//
	// Layout (little-endian):
	//
	//	Offset  Size  Description
	//	0x00    2     bit 15: tag (1 = allocated, 0 = free)
	//	              bits 0-14: payload size in bytes
	HeaderSize = 2

	// NextFieldSize is the width of the next-free link stored in the first
	// payload bytes of a free block.
	NextFieldSize = 2

	// FreeHeaderSize is the size of a free block header (FreeHeader): the
	// header word followed by the next-free link.
	//
	// Layout (little-endian):
	//
	//	Offset  Size  Description
	//	0x00    2     tag + payload size (tag bit clear)
	//	0x02    2     offset of the next free block, or NilOffset
	FreeHeaderSize = HeaderSize + NextFieldSize

	// MinBlockSize is the smallest legal block length. Any block may become
	// free, so every block must be able to hold a FreeHeader.
	MinBlockSize = FreeHeaderSize

	// MinFreePayload is the smallest payload size a free block may declare.
	MinFreePayload = FreeHeaderSize - HeaderSize

	// SizeBits is the width of the payload size field.
	SizeBits = 15

	// MaxPayload is the largest payload size the header can represent.
	MaxPayload = 1<<SizeBits - 1

	// TagMask selects the tag bit of the header word.
	TagMask = 1 << SizeBits

	// SizeMask selects the payload size bits of the header word.
	SizeMask = TagMask - 1

	// NilOffset terminates the free list. It lies outside every legal arena.
	NilOffset = 0xFFFF

	// Align is the granularity requested payload sizes must respect.
	Align = 8

	// AlignMask is Align-1, used for rounding.
	AlignMask = Align - 1

	// MinArenaSize is the smallest arena that can hold a single free block.
	MinArenaSize = MinBlockSize

	// MaxArenaSize is the largest arena whose single initial free block can
	// still be described by a 15-bit payload size.
	MaxArenaSize = 1 << SizeBits

	// DefaultArenaSize is the arena size used when none is configured (4 KiB).
	DefaultArenaSize = 4096
)
