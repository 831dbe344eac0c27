// File: mmap/file_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !linux

package mmap

import (
	"fmt"

	"github.com/momentics/bigarray/api"
)

// File is a memory-mapped regular file. Mapping is unavailable on this
// platform.
type File struct {
	data []byte
}

// Open always fails on this platform.
func Open(path string, size int64) (*File, error) {
	return nil, fmt.Errorf("%w: file mapping requires linux", api.ErrNotSupported)
}

// Bytes returns the mapped region.
func (m *File) Bytes() []byte { return m.data }

// Sync flushes the mapped region to the backing file.
func (m *File) Sync() error {
	return fmt.Errorf("%w: file mapping requires linux", api.ErrNotSupported)
}

// Close unmaps the region and closes the file.
func (m *File) Close() error { return nil }
