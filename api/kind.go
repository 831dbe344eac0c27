// File: api/kind.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Element-kind metadata shared by every layer of the library.

package api

import "math"

// Scalar is the set of primitive element types supported by typed arrays
// and buffers. The bit kind is packed into uint64 words and handled by the
// dedicated bit interfaces instead.
//
// Unsigned kinds (uint8, uint16) carry their unsigned comparison and
// truncation semantics directly in the type system.
type Scalar interface {
	uint8 | uint16 | int32 | int64 | float32 | float64
}

// IntScalar is the subset of Scalar with integer arithmetic.
type IntScalar interface {
	uint8 | uint16 | int32 | int64
}

// Kind enumerates the element kinds of the library, including the packed
// bit kind which has no Scalar representation.
type Kind int

const (
	Bit Kind = iota
	Byte
	Char
	Int
	Long
	Float
	Double
)

// MaxScalarLength is the addressing ceiling for one contiguous native
// slice of scalar elements.
const MaxScalarLength = int64(math.MaxInt32)

// MaxBitLength is the addressing ceiling for packed bit sequences:
// 64 bits pack per storage word.
const MaxBitLength = MaxScalarLength * 64

func (k Kind) String() string {
	switch k {
	case Bit:
		return "bit"
	case Byte:
		return "byte"
	case Char:
		return "char"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Bits returns the width of one element of this kind.
func (k Kind) Bits() int {
	switch k {
	case Bit:
		return 1
	case Byte:
		return 8
	case Char:
		return 16
	case Int, Float:
		return 32
	default:
		return 64
	}
}

// IsInteger reports whether elements of this kind use integer arithmetic.
func (k Kind) IsInteger() bool {
	return k != Float && k != Double
}

// IsUnsigned reports whether elements of this kind are compared and
// truncated as unsigned values.
func (k Kind) IsUnsigned() bool {
	return k == Bit || k == Byte || k == Char
}

// MinValue returns the minimum representable value of an integer kind.
// The result is meaningless for Float and Double.
func (k Kind) MinValue() int64 {
	switch k {
	case Int:
		return math.MinInt32
	case Long:
		return math.MinInt64
	default:
		return 0
	}
}

// MaxValue returns the maximum representable value of an integer kind.
// The result is meaningless for Float and Double.
func (k Kind) MaxValue() int64 {
	switch k {
	case Bit:
		return 1
	case Byte:
		return 0xFF
	case Char:
		return 0xFFFF
	case Int:
		return math.MaxInt32
	default:
		return math.MaxInt64
	}
}

// MaxCapacity returns the largest buffer capacity representable for this
// kind in one native slice.
func (k Kind) MaxCapacity() int64 {
	if k == Bit {
		return MaxBitLength
	}
	return MaxScalarLength
}

// KindOf maps a Scalar type parameter to its Kind.
func KindOf[E Scalar]() Kind {
	var zero E
	switch any(zero).(type) {
	case uint8:
		return Byte
	case uint16:
		return Char
	case int32:
		return Int
	case int64:
		return Long
	case float32:
		return Float
	default:
		return Double
	}
}
