package heap

import (
	"github.com/bytedance/gopkg/lang/mcache"

	"github.com/joshuapare/arenakit/internal/mmap"
)

//go:generate mockgen -destination=../internal/testutil/mock_reserver.go -package=testutil github.com/joshuapare/arenakit/heap Reserver

// Reserver acquires and releases the raw memory behind an arena.
//
// Reserve must return a buffer of exactly size bytes. Release is called once
// with that same buffer.
type Reserver interface {
	Reserve(size int) ([]byte, error)
	Release(data []byte) error
}

// MmapReserver maps anonymous memory outside the Go heap.
type MmapReserver struct{}

// Reserve maps size bytes of zeroed read-write memory.
func (MmapReserver) Reserve(size int) ([]byte, error) { return mmap.Anonymous(size) }

// Release unmaps data.
func (MmapReserver) Release(data []byte) error { return mmap.Release(data) }

// PoolReserver draws arena buffers from a size-classed buffer pool.
// Buffers are not zeroed.
type PoolReserver struct{}

// Reserve takes a size-byte buffer from the pool.
func (PoolReserver) Reserve(size int) ([]byte, error) { return mcache.Malloc(size), nil }

// Release returns data to the pool.
func (PoolReserver) Release(data []byte) error {
	mcache.Free(data)
	return nil
}
