// File: mmap/array.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mmap

import (
	"fmt"
	"unsafe"

	"github.com/momentics/bigarray/api"
)

// Array is a typed view of a mapped file. It deliberately does not
// implement api.DirectAccessible: buffers over mapped storage stay on
// the indirect strategy, so Force marks exactly the ranges whose
// durability the caller then controls through Sync.
type Array[E api.Scalar] struct {
	f    *File
	view []E
}

// NewArray creates a typed view spanning as many whole elements as the
// mapping holds.
func NewArray[E api.Scalar](f *File) *Array[E] {
	data := f.Bytes()
	elemSize := int(unsafe.Sizeof(*new(E)))
	n := len(data) / elemSize
	var view []E
	if n > 0 {
		view = unsafe.Slice((*E)(unsafe.Pointer(&data[0])), n)
	}
	return &Array[E]{f: f, view: view}
}

func (a *Array[E]) checkRange(pos int64, count int) error {
	if pos < 0 || pos > a.Length()-int64(count) {
		return fmt.Errorf("%w: range %d..%d, array length %d",
			api.ErrIndexOutOfRange, pos, pos+int64(count), a.Length())
	}
	return nil
}

// Length implements api.Array.
func (a *Array[E]) Length() int64 { return int64(len(a.view)) }

// GetData implements api.Array.
func (a *Array[E]) GetData(pos int64, dest []E) error {
	if err := a.checkRange(pos, len(dest)); err != nil {
		return err
	}
	copy(dest, a.view[pos:pos+int64(len(dest))])
	return nil
}

// SetData implements api.UpdatableArray.
func (a *Array[E]) SetData(pos int64, src []E) error {
	if err := a.checkRange(pos, len(src)); err != nil {
		return err
	}
	copy(a.view[pos:pos+int64(len(src))], src)
	return nil
}

// Sync flushes the mapping to the backing file.
func (a *Array[E]) Sync() error { return a.f.Sync() }

// IsImmutable implements api.Array.
func (a *Array[E]) IsImmutable() bool { return false }

// IsCopyOnNextWrite implements api.Array.
func (a *Array[E]) IsCopyOnNextWrite() bool { return false }

// IsConstant implements api.Array.
func (a *Array[E]) IsConstant() bool { return false }

var _ api.UpdatableArray[int64] = (*Array[int64])(nil)
