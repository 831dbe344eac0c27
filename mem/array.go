// File: mem/array.go
// Package mem implements the simple in-memory array models backing the
// buffer core: native-slice arrays, immutable views, copy-on-next-write
// wrappers and constant arrays.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"fmt"

	"github.com/momentics/bigarray/api"
)

func checkRange(length int64, pos int64, count int) error {
	if pos < 0 || pos > length-int64(count) {
		return fmt.Errorf("%w: range %d..%d, array length %d",
			api.ErrIndexOutOfRange, pos, pos+int64(count), length)
	}
	return nil
}

// Array is a typed sequence backed by one native slice. It is direct-
// accessible: buffers over it take the zero-copy strategy.
type Array[E api.Scalar] struct {
	data []E
}

// New allocates a zero-filled array of the given length.
func New[E api.Scalar](length int64) (*Array[E], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", api.ErrInvalidArgument, length)
	}
	if length > api.KindOf[E]().MaxCapacity() {
		return nil, fmt.Errorf("%w: length %d exceeds kind ceiling %d",
			api.ErrTooLarge, length, api.KindOf[E]().MaxCapacity())
	}
	return &Array[E]{data: make([]E, length)}, nil
}

// Wrap creates an array view over an existing slice. The slice is
// aliased, not copied.
func Wrap[E api.Scalar](data []E) *Array[E] {
	return &Array[E]{data: data}
}

// Length implements api.Array.
func (a *Array[E]) Length() int64 { return int64(len(a.data)) }

// GetData implements api.Array.
func (a *Array[E]) GetData(pos int64, dest []E) error {
	if err := checkRange(a.Length(), pos, len(dest)); err != nil {
		return err
	}
	copy(dest, a.data[pos:pos+int64(len(dest))])
	return nil
}

// SetData implements api.UpdatableArray.
func (a *Array[E]) SetData(pos int64, src []E) error {
	if err := checkRange(a.Length(), pos, len(src)); err != nil {
		return err
	}
	copy(a.data[pos:pos+int64(len(src))], src)
	return nil
}

// IsImmutable implements api.Array.
func (a *Array[E]) IsImmutable() bool { return false }

// IsCopyOnNextWrite implements api.Array.
func (a *Array[E]) IsCopyOnNextWrite() bool { return false }

// IsConstant implements api.Array.
func (a *Array[E]) IsConstant() bool { return false }

// HasNativeSlice implements api.DirectAccessible.
func (a *Array[E]) HasNativeSlice() bool { return true }

// NativeSlice implements api.DirectAccessible.
func (a *Array[E]) NativeSlice() []E { return a.data }

// NativeOffset implements api.DirectAccessible.
func (a *Array[E]) NativeOffset() int { return 0 }

var (
	_ api.UpdatableArray[uint8]   = (*Array[uint8])(nil)
	_ api.DirectAccessible[uint8] = (*Array[uint8])(nil)
)

// immutableView hides updatability and direct access of a wrapped array.
type immutableView[E api.Scalar] struct {
	a api.Array[E]
}

// AsImmutable returns a read-only view: buffers over it are forced onto
// the indirect strategy and ModeRead.
func AsImmutable[E api.Scalar](a api.Array[E]) api.Array[E] {
	return &immutableView[E]{a: a}
}

func (v *immutableView[E]) Length() int64                     { return v.a.Length() }
func (v *immutableView[E]) GetData(pos int64, dest []E) error { return v.a.GetData(pos, dest) }
func (v *immutableView[E]) IsImmutable() bool                 { return true }
func (v *immutableView[E]) IsCopyOnNextWrite() bool           { return false }
func (v *immutableView[E]) IsConstant() bool                  { return v.a.IsConstant() }

// cowArray shares the wrapped storage until the first write, which
// clones it. While the clone is still pending the array reports
// copy-on-next-write, so buffers refuse the direct strategy.
type cowArray[E api.Scalar] struct {
	data   []E
	copied bool
}

// CopyOnNextWrite wraps an array so the first write reallocates the
// backing storage.
func CopyOnNextWrite[E api.Scalar](a *Array[E]) api.UpdatableArray[E] {
	return &cowArray[E]{data: a.data}
}

func (c *cowArray[E]) Length() int64 { return int64(len(c.data)) }

func (c *cowArray[E]) GetData(pos int64, dest []E) error {
	if err := checkRange(c.Length(), pos, len(dest)); err != nil {
		return err
	}
	copy(dest, c.data[pos:pos+int64(len(dest))])
	return nil
}

func (c *cowArray[E]) SetData(pos int64, src []E) error {
	if err := checkRange(c.Length(), pos, len(src)); err != nil {
		return err
	}
	if !c.copied {
		clone := make([]E, len(c.data))
		copy(clone, c.data)
		c.data = clone
		c.copied = true
	}
	copy(c.data[pos:pos+int64(len(src))], src)
	return nil
}

func (c *cowArray[E]) IsImmutable() bool       { return false }
func (c *cowArray[E]) IsCopyOnNextWrite() bool { return !c.copied }
func (c *cowArray[E]) IsConstant() bool        { return false }

// HasNativeSlice reports direct eligibility: false until the private
// clone exists.
func (c *cowArray[E]) HasNativeSlice() bool { return c.copied }
func (c *cowArray[E]) NativeSlice() []E     { return c.data }
func (c *cowArray[E]) NativeOffset() int    { return 0 }

var _ api.DirectAccessible[uint8] = (*cowArray[uint8])(nil)
