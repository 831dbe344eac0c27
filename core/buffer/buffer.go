// File: core/buffer/buffer.go
// Package buffer implements the data-buffer core: a movable window onto a
// typed array with a direct (zero-copy) and an indirect (staging) strategy.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The strategy is chosen once, at construction, by capability
// inspection of the array: a mutable, non-copy-on-write array exposing
// an aliasable native slice gets the direct strategy, everything else
// gets a private staging slice. Client code never branches on the
// strategy except through IsDirect.

package buffer

import (
	"fmt"

	"github.com/momentics/bigarray/api"
	"github.com/momentics/bigarray/pool"
)

// ArrayBuffer is the DataBuffer implementation for scalar element kinds.
// Instances are not safe for concurrent use.
type ArrayBuffer[E api.Scalar] struct {
	arr        api.Array[E]
	upd        api.UpdatableArray[E]
	mode       api.AccessMode
	capacity   int
	isConstant bool
	isDirect   bool

	data      []E
	nativeOff int                // direct: index of array element 0 in data
	scratch   *pool.ArrayPool[E] // indirect: pool for the staging slice, may be nil
	pooled    bool               // staging slice is currently borrowed

	position int64
	from, to int
	count    int
	mapped   bool
	disposed bool
}

// New creates a buffer over arr with the given access mode and capacity.
// The capacity is clamped to the array length; a capacity above the
// element kind's addressing ceiling is a capacity-overflow fault.
//
// ModeReadWrite and ModePrivate require an updatable array.
func New[E api.Scalar](arr api.Array[E], mode api.AccessMode, capacity int) (*ArrayBuffer[E], error) {
	if arr == nil {
		return nil, fmt.Errorf("%w: nil array", api.ErrInvalidArgument)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d, must be positive", api.ErrInvalidArgument, capacity)
	}
	if int64(capacity) > api.KindOf[E]().MaxCapacity() {
		return nil, fmt.Errorf("%w: capacity %d exceeds kind ceiling %d",
			api.ErrTooLarge, capacity, api.KindOf[E]().MaxCapacity())
	}
	if int64(capacity) > arr.Length() {
		capacity = int(arr.Length())
	}
	upd, updatable := arr.(api.UpdatableArray[E])
	if !updatable && mode != api.ModeRead {
		return nil, fmt.Errorf("%w: %v mode requires an updatable array", api.ErrInvalidArgument, mode)
	}
	b := &ArrayBuffer[E]{
		arr:        arr,
		mode:       mode,
		capacity:   capacity,
		isConstant: arr.IsConstant(),
	}
	if updatable {
		b.upd = upd
	}
	if mode != api.ModePrivate && !arr.IsCopyOnNextWrite() {
		if da, ok := arr.(api.DirectAccessible[E]); ok && da.HasNativeSlice() {
			b.isDirect = true
			b.data = da.NativeSlice()
			b.nativeOff = da.NativeOffset()
		}
	}
	if !b.isDirect {
		if sp := scratchFor[E](); sp != nil && capacity <= sp.ArrayLength() {
			b.scratch = sp
		}
	}
	return b, nil
}

// allocate prepares the staging slice on first map. Indirect buffers of
// constant arrays load their contents here exactly once; later maps only
// recompute the window arithmetic.
func (b *ArrayBuffer[E]) allocate() error {
	if b.data != nil {
		return nil
	}
	if b.scratch != nil {
		b.data = b.scratch.RequestArray()
		b.pooled = true
	} else {
		b.data = make([]E, b.capacity)
	}
	if b.isConstant && b.capacity > 0 {
		if err := b.arr.GetData(0, b.data[:b.capacity]); err != nil {
			b.release()
			return err
		}
		b.count = b.capacity
		b.to = b.capacity
	}
	return nil
}

func (b *ArrayBuffer[E]) release() {
	if b.pooled {
		_ = b.scratch.ReleaseArray(b.data)
		b.pooled = false
	}
	b.data = nil
}

// Map implements api.DataBuffer.
func (b *ArrayBuffer[E]) Map(position int64) error {
	return b.MapWith(position, b.capacity, true)
}

// MapWith implements api.DataBuffer.
func (b *ArrayBuffer[E]) MapWith(position int64, maxCount int, readData bool) error {
	if b.disposed {
		return fmt.Errorf("%w: the data buffer is disposed", api.ErrInvalidState)
	}
	if maxCount < 0 {
		return fmt.Errorf("%w: negative maxCount (%d)", api.ErrInvalidArgument, maxCount)
	}
	length := b.arr.Length()
	if position < 0 || position > length {
		return fmt.Errorf("%w: position %d, array length %d", api.ErrIndexOutOfRange, position, length)
	}
	if err := b.allocate(); err != nil {
		return err
	}
	b.position = position
	c := b.capacity
	if maxCount < c {
		c = maxCount
	}
	if rem := length - position; int64(c) > rem {
		c = int(rem)
	}
	b.count = c
	if !b.isConstant {
		if b.isDirect {
			b.from = b.nativeOff + int(position)
		} else {
			b.from = 0
			if readData && c > 0 {
				if err := b.arr.GetData(position, b.data[:c]); err != nil {
					return err
				}
			}
		}
	}
	b.to = b.from + b.count
	b.mapped = true
	return nil
}

// MapNext implements api.DataBuffer.
func (b *ArrayBuffer[E]) MapNext() error {
	return b.MapWith(b.position+int64(b.count), b.capacity, true)
}

// MapNextWith implements api.DataBuffer.
func (b *ArrayBuffer[E]) MapNextWith(readData bool) error {
	return b.MapWith(b.position+int64(b.count), b.capacity, readData)
}

// Force implements api.DataBuffer.
func (b *ArrayBuffer[E]) Force() error {
	return b.ForceRange(b.from, b.to)
}

// ForceRange implements api.DataBuffer.
func (b *ArrayBuffer[E]) ForceRange(fromIndex, toIndex int) error {
	if b.disposed {
		return fmt.Errorf("%w: the data buffer is disposed", api.ErrInvalidState)
	}
	if b.mode == api.ModeRead {
		return fmt.Errorf("%w: cannot force read-only data buffer", api.ErrInvalidState)
	}
	if fromIndex > toIndex {
		return fmt.Errorf("%w: force range %d..%d is inverted", api.ErrInvalidArgument, fromIndex, toIndex)
	}
	if fromIndex < b.from || toIndex > b.to {
		return fmt.Errorf("%w: force range %d..%d outside the current actual range %d..%d",
			api.ErrInvalidState, fromIndex, toIndex, b.from, b.to)
	}
	if b.mode == api.ModePrivate || b.isDirect || b.isConstant || b.count == 0 || fromIndex == toIndex {
		return nil
	}
	return b.upd.SetData(b.position+int64(fromIndex-b.from), b.data[fromIndex:toIndex])
}

// Dispose implements api.DataBuffer.
func (b *ArrayBuffer[E]) Dispose() error {
	if b.disposed {
		return fmt.Errorf("%w: the data buffer is already disposed", api.ErrInvalidState)
	}
	b.release()
	b.disposed = true
	return nil
}

// Mode implements api.DataBuffer.
func (b *ArrayBuffer[E]) Mode() api.AccessMode { return b.mode }

// Data implements api.DataBuffer.
func (b *ArrayBuffer[E]) Data() []E {
	if !b.mapped || b.disposed {
		return nil
	}
	return b.data
}

// Position implements api.DataBuffer.
func (b *ArrayBuffer[E]) Position() int64 { return b.position }

// Capacity implements api.DataBuffer.
func (b *ArrayBuffer[E]) Capacity() int { return b.capacity }

// FromIndex implements api.DataBuffer.
func (b *ArrayBuffer[E]) FromIndex() int { return b.from }

// ToIndex implements api.DataBuffer.
func (b *ArrayBuffer[E]) ToIndex() int { return b.to }

// Count implements api.DataBuffer.
func (b *ArrayBuffer[E]) Count() int { return b.count }

// HasData implements api.DataBuffer.
func (b *ArrayBuffer[E]) HasData() bool { return b.count > 0 }

// IsDirect implements api.DataBuffer.
func (b *ArrayBuffer[E]) IsDirect() bool { return b.isDirect }

func (b *ArrayBuffer[E]) String() string {
	kind := "indirect"
	if b.isDirect {
		kind = "direct"
	}
	return fmt.Sprintf("data buffer [%s; mode=%v, capacity=%d, position=%d, actual range %d..%d]",
		kind, b.mode, b.capacity, b.position, b.from, b.to)
}

var _ api.DataBuffer[uint8] = (*ArrayBuffer[uint8])(nil)
