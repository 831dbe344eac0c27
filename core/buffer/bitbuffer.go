// File: core/buffer/bitbuffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The bit-kind buffer. The window arithmetic matches ArrayBuffer, but
// every index is a bit index within the packed words, and indirect
// staging regions carry a BitsGap alignment reserve so the mapped start
// can keep the word phase of the source.

package buffer

import (
	"fmt"

	"github.com/momentics/bigarray/api"
	"github.com/momentics/bigarray/core/bits"
	"github.com/momentics/bigarray/pool"
)

// ArrayBitBuffer is the DataBitBuffer implementation. Instances are not
// safe for concurrent use.
type ArrayBitBuffer struct {
	arr        api.BitArray
	upd        api.UpdatableBitArray
	mode       api.AccessMode
	capacity   int64
	isConstant bool
	isDirect   bool

	data         []uint64
	nativeBitOff int64
	scratch      *pool.ArrayPool[uint64]
	pooled       bool
	wordLen      int64 // staging length in words, indirect only

	position int64
	from, to int64
	count    int64
	mapped   bool
	disposed bool
}

// NewBit creates a buffer over a packed bit array. The capacity ceiling
// for bits leaves room for the alignment gap.
func NewBit(arr api.BitArray, mode api.AccessMode, capacity int64) (*ArrayBitBuffer, error) {
	if arr == nil {
		return nil, fmt.Errorf("%w: nil array", api.ErrInvalidArgument)
	}
	maxCap := api.MaxBitLength - BitsGap
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d, must be positive", api.ErrInvalidArgument, capacity)
	}
	if capacity > maxCap {
		return nil, fmt.Errorf("%w: capacity %d exceeds bit ceiling %d", api.ErrTooLarge, capacity, maxCap)
	}
	if capacity > arr.Length() {
		capacity = arr.Length()
	}
	upd, updatable := arr.(api.UpdatableBitArray)
	if !updatable && mode != api.ModeRead {
		return nil, fmt.Errorf("%w: %v mode requires an updatable array", api.ErrInvalidArgument, mode)
	}
	b := &ArrayBitBuffer{
		arr:        arr,
		mode:       mode,
		capacity:   capacity,
		isConstant: arr.IsConstant(),
	}
	if updatable {
		b.upd = upd
	}
	if mode != api.ModePrivate && !arr.IsCopyOnNextWrite() {
		if da, ok := arr.(api.DirectBitAccessible); ok && da.HasNativeWords() {
			b.isDirect = true
			b.data = da.NativeWords()
			b.nativeBitOff = da.NativeBitOffset()
		}
	}
	if !b.isDirect {
		b.wordLen = bits.PackedLength(capacity + BitsGap)
		if b.wordLen <= int64(bitScratch.ArrayLength()) {
			b.scratch = bitScratch
		}
	}
	return b, nil
}

func (b *ArrayBitBuffer) allocate() error {
	if b.data != nil {
		return nil
	}
	if b.scratch != nil {
		b.data = b.scratch.RequestArray()
		b.pooled = true
	} else {
		b.data = make([]uint64, b.wordLen)
	}
	if b.isConstant && b.capacity > 0 {
		if err := b.arr.GetBits(0, b.data, 0, b.capacity); err != nil {
			b.release()
			return err
		}
		b.count = b.capacity
		b.to = b.capacity
	}
	return nil
}

func (b *ArrayBitBuffer) release() {
	if b.pooled {
		_ = b.scratch.ReleaseArray(b.data)
		b.pooled = false
	}
	b.data = nil
}

// Map implements api.DataBitBuffer.
func (b *ArrayBitBuffer) Map(position int64) error {
	return b.MapWith(position, b.capacity, true)
}

// MapWith implements api.DataBitBuffer.
func (b *ArrayBitBuffer) MapWith(position int64, maxCount int64, readData bool) error {
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
	if rem := length - position; c > rem {
		c = rem
	}
	b.count = c
	if !b.isConstant {
		if b.isDirect {
			b.from = position + b.nativeBitOff
		} else {
			// Keep the in-word phase of the source so reads move whole
			// words; the gap guarantees from+count fits the staging.
			b.from = position & (bits.WordLen - 1)
			if readData && c > 0 {
				if err := b.arr.GetBits(position, b.data, b.from, c); err != nil {
					return err
				}
			}
		}
	}
	b.to = b.from + b.count
	b.mapped = true
	return nil
}

// MapNext implements api.DataBitBuffer.
func (b *ArrayBitBuffer) MapNext() error {
	return b.MapWith(b.position+b.count, b.capacity, true)
}

// MapNextWith implements api.DataBitBuffer.
func (b *ArrayBitBuffer) MapNextWith(readData bool) error {
	return b.MapWith(b.position+b.count, b.capacity, readData)
}

// Force implements api.DataBitBuffer.
func (b *ArrayBitBuffer) Force() error {
	return b.ForceRange(b.from, b.to)
}

// ForceRange implements api.DataBitBuffer.
func (b *ArrayBitBuffer) ForceRange(fromIndex, toIndex int64) error {
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
	if b.mode == api.ModePrivate || b.isDirect || b.isConstant || fromIndex == toIndex {
		return nil
	}
	return b.upd.SetBits(b.position+(fromIndex-b.from), b.data, fromIndex, toIndex-fromIndex)
}

// Dispose implements api.DataBitBuffer.
func (b *ArrayBitBuffer) Dispose() error {
	if b.disposed {
		return fmt.Errorf("%w: the data buffer is already disposed", api.ErrInvalidState)
	}
	b.release()
	b.disposed = true
	return nil
}

// Mode implements api.DataBitBuffer.
func (b *ArrayBitBuffer) Mode() api.AccessMode { return b.mode }

// Data implements api.DataBitBuffer.
func (b *ArrayBitBuffer) Data() []uint64 {
	if !b.mapped || b.disposed {
		return nil
	}
	return b.data
}

// Position implements api.DataBitBuffer.
func (b *ArrayBitBuffer) Position() int64 { return b.position }

// Capacity implements api.DataBitBuffer.
func (b *ArrayBitBuffer) Capacity() int64 { return b.capacity }

// FromIndex implements api.DataBitBuffer.
func (b *ArrayBitBuffer) FromIndex() int64 { return b.from }

// ToIndex implements api.DataBitBuffer.
func (b *ArrayBitBuffer) ToIndex() int64 { return b.to }

// Count implements api.DataBitBuffer.
func (b *ArrayBitBuffer) Count() int64 { return b.count }

// HasData implements api.DataBitBuffer.
func (b *ArrayBitBuffer) HasData() bool { return b.count > 0 }

// IsDirect implements api.DataBitBuffer.
func (b *ArrayBitBuffer) IsDirect() bool { return b.isDirect }

var _ api.DataBitBuffer = (*ArrayBitBuffer)(nil)
