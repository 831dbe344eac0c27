// File: api/array.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts of the storage layer consumed by the buffer core.
//
// An Array is an unbounded-length, homogeneously-typed sequence owned by
// an external memory model: a heap slice, a memory-mapped file, a
// constant generator. Buffers never own the array, only borrow it.

package api

// Array is a read-only view of a typed sequence.
type Array[E Scalar] interface {
	// Length returns the number of elements in the sequence.
	Length() int64

	// GetData copies len(dest) elements starting at pos into dest.
	// The full range [pos, pos+len(dest)) must lie inside the array.
	GetData(pos int64, dest []E) error

	// IsImmutable reports whether the sequence can never change.
	IsImmutable() bool

	// IsCopyOnNextWrite reports whether the first write will reallocate
	// the backing storage, invalidating any aliased view of it.
	IsCopyOnNextWrite() bool

	// IsConstant reports whether every position yields the same value.
	IsConstant() bool
}

// UpdatableArray is an Array whose elements can be replaced.
type UpdatableArray[E Scalar] interface {
	Array[E]

	// SetData copies len(src) elements from src into the sequence
	// starting at pos.
	SetData(pos int64, src []E) error
}

// DirectAccessible is implemented by arrays whose elements live in an
// aliasable native slice. It is the eligibility probe for the direct
// (zero-copy) buffer strategy.
type DirectAccessible[E Scalar] interface {
	// HasNativeSlice reports whether NativeSlice may be called.
	HasNativeSlice() bool

	// NativeSlice returns the backing slice itself, not a copy.
	NativeSlice() []E

	// NativeOffset returns the index of logical element 0 inside
	// NativeSlice.
	NativeOffset() int
}

// BitArray is a read-only view of a bit sequence packed into uint64
// words, 64 bits per word, lowest bit first.
type BitArray interface {
	Length() int64

	// GetBits copies count bits starting at pos into dest, where the
	// first copied bit lands at bit index destBit of the packed words.
	GetBits(pos int64, dest []uint64, destBit int64, count int64) error

	IsImmutable() bool
	IsCopyOnNextWrite() bool
	IsConstant() bool
}

// UpdatableBitArray is a BitArray whose bits can be replaced.
type UpdatableBitArray interface {
	BitArray

	// SetBits copies count bits from bit index srcBit of the packed
	// words src into the sequence starting at pos.
	SetBits(pos int64, src []uint64, srcBit int64, count int64) error
}

// DirectBitAccessible is the direct-strategy eligibility probe for bit
// arrays backed by an aliasable word slice.
type DirectBitAccessible interface {
	HasNativeWords() bool
	NativeWords() []uint64

	// NativeBitOffset returns the bit index of logical bit 0 inside
	// NativeWords.
	NativeBitOffset() int64
}
