//go:build linux || darwin

package mmap

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Anonymous maps size bytes of zeroed, private, read-write memory.
func Anonymous(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: invalid size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	return data, nil
}

// Release unmaps memory returned by Anonymous.
func Release(data []byte) error {
	if data == nil {
		return nil
	}
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	if err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}
