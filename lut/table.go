// File: lut/table.go
// Package lut implements the per-kind lookup-table accelerator: a scalar
// function precomputed over the whole 16-bit domain, then streamed over
// large arrays through the buffer abstraction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A Table is immutable after construction and safe for concurrent use:
// the only shared mutable state is the READ buffer over the source, and
// the lock around it covers exactly the remap and the extraction of the
// window bounds. Remapping a direct buffer is O(1) arithmetic, so the
// critical section stays tiny; the element loop runs outside the lock,
// reading an already-obtained, now-stable window.

package lut

import (
	"fmt"
	"sync"

	"github.com/momentics/bigarray/api"
	"github.com/momentics/bigarray/control"
	"github.com/momentics/bigarray/core/buffer"
	"github.com/momentics/bigarray/core/ops"
	"github.com/momentics/bigarray/pool"
)

// tableSize is the full domain of a packed 16-bit source value. The
// table is a closed mapping: its index domain must match the source
// element's bit width exactly.
const tableSize = 1 << 16

// scratchLen is the window length of the pooled non-direct path.
const scratchLen = 16384

var charScratch = pool.NewArrayPool[uint16](scratchLen)

func init() {
	control.Register("lut.scratch.char", func() any { return charScratch.Stats() })
}

// Func is the scalar function a table precomputes.
type Func func(x float64) float64

// Table streams a 16-bit source array through a precomputed lookup
// table producing elements of kind D.
type Table[D api.Scalar] struct {
	mu    sync.Mutex
	src   api.Array[uint16]
	buf   api.DataBuffer[uint16]
	table []D
}

// New builds the table for f over all 65536 source values. With
// truncateOverflows, integer destinations clamp f's results to the
// kind's representable range; otherwise results narrow with wrapping,
// after a saturating conversion to int64.
func New[D api.Scalar](src api.Array[uint16], f Func, truncateOverflows bool) (*Table[D], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source array", api.ErrInvalidArgument)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: nil function", api.ErrInvalidArgument)
	}
	buf, err := buffer.New[uint16](src, api.ModeRead, scratchLen)
	if err != nil {
		return nil, err
	}
	k := api.KindOf[D]()
	table := make([]D, tableSize)
	switch {
	case k.IsInteger() && truncateOverflows:
		lo, hi := k.MinValue(), k.MaxValue()
		for v := range table {
			table[v] = D(clampToInt64(f(float64(v)), lo, hi))
		}
	case k.IsInteger():
		for v := range table {
			table[v] = D(saturateToInt64(f(float64(v))))
		}
	default:
		for v := range table {
			table[v] = D(f(float64(v)))
		}
	}
	return &Table[D]{src: src, buf: buf, table: table}, nil
}

// GetData produces count transformed elements from source positions
// [arrayPos, arrayPos+count) into dest starting at destOffset.
func (t *Table[D]) GetData(arrayPos int64, dest []D, destOffset, count int) error {
	if dest == nil {
		return fmt.Errorf("%w: nil dest array", api.ErrInvalidArgument)
	}
	if err := ops.RangeCheck(len(dest), destOffset, count); err != nil {
		return err
	}
	if arrayPos < 0 || arrayPos > t.src.Length()-int64(count) {
		return fmt.Errorf("%w: range %d..%d, source length %d",
			api.ErrIndexOutOfRange, arrayPos, arrayPos+int64(count), t.src.Length())
	}
	for count > 0 {
		var n int
		if !t.buf.IsDirect() {
			data := charScratch.RequestArray()
			n = min(count, len(data))
			err := t.src.GetData(arrayPos, data[:n])
			if err == nil {
				for j := 0; j < n; j++ {
					dest[destOffset] = t.table[data[j]]
					destOffset++
				}
			}
			_ = charScratch.ReleaseArray(data)
			if err != nil {
				return err
			}
		} else {
			// Concurrent callers must not interleave map calls against
			// the shared direct buffer; the window itself is stable
			// once obtained, so the copy loop runs unlocked.
			t.mu.Lock()
			err := t.buf.MapWith(arrayPos, count, true)
			if err != nil {
				t.mu.Unlock()
				return err
			}
			data := t.buf.Data()
			from, to := t.buf.FromIndex(), t.buf.ToIndex()
			t.mu.Unlock()
			for j := from; j < to; j++ {
				dest[destOffset] = t.table[data[j]]
				destOffset++
			}
			n = to - from
		}
		arrayPos += int64(n)
		count -= n
	}
	return nil
}

// BoolTable is the boolean-destination variant: true wherever f is
// nonzero.
type BoolTable struct {
	mu    sync.Mutex
	src   api.Array[uint16]
	buf   api.DataBuffer[uint16]
	table []bool
}

// NewBool builds the boolean table for f over all 65536 source values.
func NewBool(src api.Array[uint16], f Func) (*BoolTable, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source array", api.ErrInvalidArgument)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: nil function", api.ErrInvalidArgument)
	}
	buf, err := buffer.New[uint16](src, api.ModeRead, scratchLen)
	if err != nil {
		return nil, err
	}
	table := make([]bool, tableSize)
	for v := range table {
		table[v] = f(float64(v)) != 0
	}
	return &BoolTable{src: src, buf: buf, table: table}, nil
}

// GetData produces count transformed booleans from source positions
// [arrayPos, arrayPos+count) into dest starting at destOffset.
func (t *BoolTable) GetData(arrayPos int64, dest []bool, destOffset, count int) error {
	if dest == nil {
		return fmt.Errorf("%w: nil dest array", api.ErrInvalidArgument)
	}
	if err := ops.RangeCheck(len(dest), destOffset, count); err != nil {
		return err
	}
	if arrayPos < 0 || arrayPos > t.src.Length()-int64(count) {
		return fmt.Errorf("%w: range %d..%d, source length %d",
			api.ErrIndexOutOfRange, arrayPos, arrayPos+int64(count), t.src.Length())
	}
	for count > 0 {
		var n int
		if !t.buf.IsDirect() {
			data := charScratch.RequestArray()
			n = min(count, len(data))
			err := t.src.GetData(arrayPos, data[:n])
			if err == nil {
				for j := 0; j < n; j++ {
					dest[destOffset] = t.table[data[j]]
					destOffset++
				}
			}
			_ = charScratch.ReleaseArray(data)
			if err != nil {
				return err
			}
		} else {
			t.mu.Lock()
			err := t.buf.MapWith(arrayPos, count, true)
			if err != nil {
				t.mu.Unlock()
				return err
			}
			data := t.buf.Data()
			from, to := t.buf.FromIndex(), t.buf.ToIndex()
			t.mu.Unlock()
			for j := from; j < to; j++ {
				dest[destOffset] = t.table[data[j]]
				destOffset++
			}
			n = to - from
		}
		arrayPos += int64(n)
		count -= n
	}
	return nil
}
