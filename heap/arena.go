package heap

import (
	"github.com/joshuapare/arenakit/internal/format"
	"github.com/joshuapare/arenakit/internal/logger"
)

// Arena is a fixed-size byte buffer obtained from a Reserver.
type Arena struct {
	r    Reserver
	data []byte
	size int
}

// Open reserves an arena of size bytes. A nil Reserver selects MmapReserver.
//
// Size must lie in [format.MinArenaSize, format.MaxArenaSize]: the first
// block of a fresh arena spans all of it, and its payload size must fit the
// 15-bit header field.
func Open(size int, r Reserver) (*Arena, error) {
	if size < format.MinArenaSize || size > format.MaxArenaSize {
		return nil, &ArenaError{Op: "reserve", Size: size, Err: ErrArenaSize}
	}
	if r == nil {
		r = MmapReserver{}
	}

	data, err := r.Reserve(size)
	if err != nil {
		return nil, &ArenaError{Op: "reserve", Size: size, Err: err}
	}
	if len(data) != size {
		_ = r.Release(data)
		return nil, &ArenaError{Op: "reserve", Size: size, Err: ErrShortReserve}
	}

	logger.Debug("arena reserved", "size", size)
	return &Arena{r: r, data: data, size: size}, nil
}

// Close releases the backing memory. Closing twice is a no-op.
func (a *Arena) Close() error {
	if a == nil || a.data == nil {
		return nil
	}
	data := a.data
	a.data = nil
	if err := a.r.Release(data); err != nil {
		return &ArenaError{Op: "release", Size: a.size, Err: err}
	}
	logger.Debug("arena released", "size", a.size)
	return nil
}

// Bytes returns the arena contents, or nil after Close.
func (a *Arena) Bytes() []byte { return a.data }

// Size returns the arena size in bytes. It survives Close.
func (a *Arena) Size() int { return a.size }

// Closed reports whether the backing memory has been released.
func (a *Arena) Closed() bool { return a == nil || a.data == nil }

// Blocks returns an iterator over the blocks tiling the arena.
func (a *Arena) Blocks() *BlockIterator { return NewBlockIterator(a.data) }
