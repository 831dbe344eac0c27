// File: mmap/file_linux.go
// Package mmap implements file-mapped storage for disk-backed arrays.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build linux

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// File is a memory-mapped regular file.
type File struct {
	f    *os.File
	data []byte
}

// Open creates or opens path and maps size bytes of it read-write,
// growing the file with fallocate when it is shorter.
func Open(path string, size int64) (*File, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmap: size %d, must be positive", size)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if st.Size() < size {
		if err := unix.Fallocate(int(f.Fd()), 0, 0, size); err != nil {
			f.Close()
			return nil, fmt.Errorf("mmap: fallocate: %w", err)
		}
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("mmap: %w", err)
	}
	return &File{f: f, data: data}, nil
}

// Bytes returns the mapped region.
func (m *File) Bytes() []byte { return m.data }

// Sync flushes the mapped region to the backing file.
func (m *File) Sync() error {
	return unix.Msync(m.data, unix.MS_SYNC)
}

// Close unmaps the region and closes the file.
func (m *File) Close() error {
	if m.data != nil {
		if err := unix.Munmap(m.data); err != nil {
			return err
		}
		m.data = nil
	}
	return m.f.Close()
}
