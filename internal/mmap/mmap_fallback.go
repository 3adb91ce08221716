//go:build !linux && !darwin && !windows

package mmap

import (
	"fmt"

	"github.com/bytedance/gopkg/lang/dirtmake"
)

// Anonymous returns a heap buffer when mmap is not available. The buffer is
// not zeroed; the allocator formats every header it reads.
func Anonymous(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid size %d", size)
	}
	return dirtmake.Bytes(size, size), nil
}

// Release drops the buffer; the garbage collector reclaims it.
func Release(data []byte) error {
	return nil
}
