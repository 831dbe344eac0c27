// File: core/buffer/scratch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Process-wide scratch pools feeding indirect staging slices, one pool
// per element kind. The payload budget of one mapping window is
// MaxBufferSize bytes regardless of the kind (double that for the
// 64-bit kinds, which count byte pairs).

package buffer

import (
	"github.com/momentics/bigarray/api"
	"github.com/momentics/bigarray/control"
	"github.com/momentics/bigarray/pool"
)

const (
	// MaxBufferSize is the byte budget of one pooled mapping window.
	MaxBufferSize = 65536

	// BitsGap is the alignment gap of bit staging regions, in bits.
	// Must be a power of two.
	BitsGap = 256
)

var (
	bitScratch    = pool.NewArrayPool[uint64](MaxBufferSize/8 + BitsGap/64 + 1)
	byteScratch   = pool.NewArrayPool[uint8](MaxBufferSize)
	charScratch   = pool.NewArrayPool[uint16](MaxBufferSize / 2)
	intScratch    = pool.NewArrayPool[int32](MaxBufferSize / 4)
	longScratch   = pool.NewArrayPool[int64](MaxBufferSize / 4) // byte pairs
	floatScratch  = pool.NewArrayPool[float32](MaxBufferSize / 4)
	doubleScratch = pool.NewArrayPool[float64](MaxBufferSize / 4) // byte pairs
)

func init() {
	control.Register("buffer.scratch.bit", func() any { return bitScratch.Stats() })
	control.Register("buffer.scratch.byte", func() any { return byteScratch.Stats() })
	control.Register("buffer.scratch.char", func() any { return charScratch.Stats() })
	control.Register("buffer.scratch.int", func() any { return intScratch.Stats() })
	control.Register("buffer.scratch.long", func() any { return longScratch.Stats() })
	control.Register("buffer.scratch.float", func() any { return floatScratch.Stats() })
	control.Register("buffer.scratch.double", func() any { return doubleScratch.Stats() })
}

// DefaultCapacity returns the recommended mapping-window length for the
// element kind: the length of one pooled staging slice.
func DefaultCapacity[E api.Scalar]() int {
	return scratchFor[E]().ArrayLength()
}

// scratchFor returns the process-wide scratch pool of the element kind.
func scratchFor[E api.Scalar]() *pool.ArrayPool[E] {
	var zero E
	switch any(zero).(type) {
	case uint8:
		return any(byteScratch).(*pool.ArrayPool[E])
	case uint16:
		return any(charScratch).(*pool.ArrayPool[E])
	case int32:
		return any(intScratch).(*pool.ArrayPool[E])
	case int64:
		return any(longScratch).(*pool.ArrayPool[E])
	case float32:
		return any(floatScratch).(*pool.ArrayPool[E])
	default:
		return any(doubleScratch).(*pool.ArrayPool[E])
	}
}
