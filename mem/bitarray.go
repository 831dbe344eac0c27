// File: mem/bitarray.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"fmt"

	"github.com/momentics/bigarray/api"
	"github.com/momentics/bigarray/core/bits"
)

// BitArray is a bit sequence packed into native uint64 words. It is
// direct-word-accessible, so buffers over it take the zero-copy path.
type BitArray struct {
	words  []uint64
	length int64
}

// NewBits allocates a zero-filled bit array of the given length.
func NewBits(length int64) (*BitArray, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", api.ErrInvalidArgument, length)
	}
	if length > api.MaxBitLength {
		return nil, fmt.Errorf("%w: length %d exceeds bit ceiling %d",
			api.ErrTooLarge, length, api.MaxBitLength)
	}
	return &BitArray{words: make([]uint64, bits.PackedLength(length)), length: length}, nil
}

// WrapBits creates a bit array view over existing packed words.
func WrapBits(words []uint64, length int64) (*BitArray, error) {
	if length < 0 || bits.PackedLength(length) > int64(len(words)) {
		return nil, fmt.Errorf("%w: length %d does not fit %d words",
			api.ErrInvalidArgument, length, len(words))
	}
	return &BitArray{words: words, length: length}, nil
}

// Length implements api.BitArray.
func (b *BitArray) Length() int64 { return b.length }

// GetBit returns one bit.
func (b *BitArray) GetBit(index int64) (bool, error) {
	if index < 0 || index >= b.length {
		return false, fmt.Errorf("%w: index %d, length %d", api.ErrIndexOutOfRange, index, b.length)
	}
	return bits.GetBit(b.words, index), nil
}

// SetBit sets one bit.
func (b *BitArray) SetBit(index int64, value bool) error {
	if index < 0 || index >= b.length {
		return fmt.Errorf("%w: index %d, length %d", api.ErrIndexOutOfRange, index, b.length)
	}
	bits.SetBit(b.words, index, value)
	return nil
}

// GetBits implements api.BitArray.
func (b *BitArray) GetBits(pos int64, dest []uint64, destBit int64, count int64) error {
	if pos < 0 || pos > b.length-count {
		return fmt.Errorf("%w: bits %d..%d, length %d", api.ErrIndexOutOfRange, pos, pos+count, b.length)
	}
	return bits.CopyBits(dest, destBit, b.words, pos, count)
}

// SetBits implements api.UpdatableBitArray.
func (b *BitArray) SetBits(pos int64, src []uint64, srcBit int64, count int64) error {
	if pos < 0 || pos > b.length-count {
		return fmt.Errorf("%w: bits %d..%d, length %d", api.ErrIndexOutOfRange, pos, pos+count, b.length)
	}
	return bits.CopyBits(b.words, pos, src, srcBit, count)
}

// IsImmutable implements api.BitArray.
func (b *BitArray) IsImmutable() bool { return false }

// IsCopyOnNextWrite implements api.BitArray.
func (b *BitArray) IsCopyOnNextWrite() bool { return false }

// IsConstant implements api.BitArray.
func (b *BitArray) IsConstant() bool { return false }

// HasNativeWords implements api.DirectBitAccessible.
func (b *BitArray) HasNativeWords() bool { return true }

// NativeWords implements api.DirectBitAccessible.
func (b *BitArray) NativeWords() []uint64 { return b.words }

// NativeBitOffset implements api.DirectBitAccessible.
func (b *BitArray) NativeBitOffset() int64 { return 0 }

var (
	_ api.UpdatableBitArray   = (*BitArray)(nil)
	_ api.DirectBitAccessible = (*BitArray)(nil)
)

// ConstantBits is a read-only bit sequence of one repeated value.
type ConstantBits struct {
	length int64
	value  bool
}

// NewConstantBits creates a constant bit array.
func NewConstantBits(length int64, value bool) (*ConstantBits, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", api.ErrInvalidArgument, length)
	}
	return &ConstantBits{length: length, value: value}, nil
}

// Length implements api.BitArray.
func (c *ConstantBits) Length() int64 { return c.length }

// GetBits implements api.BitArray.
func (c *ConstantBits) GetBits(pos int64, dest []uint64, destBit int64, count int64) error {
	if pos < 0 || pos > c.length-count {
		return fmt.Errorf("%w: bits %d..%d, length %d", api.ErrIndexOutOfRange, pos, pos+count, c.length)
	}
	return bits.FillBits(dest, destBit, count, c.value)
}

// IsImmutable implements api.BitArray.
func (c *ConstantBits) IsImmutable() bool { return true }

// IsCopyOnNextWrite implements api.BitArray.
func (c *ConstantBits) IsCopyOnNextWrite() bool { return false }

// IsConstant implements api.BitArray.
func (c *ConstantBits) IsConstant() bool { return true }

var _ api.BitArray = (*ConstantBits)(nil)
