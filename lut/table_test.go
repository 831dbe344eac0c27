// File: lut/table_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package lut

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/momentics/bigarray/api"
	"github.com/momentics/bigarray/mem"
)

func charSource(t *testing.T, values []uint16) *mem.Array[uint16] {
	t.Helper()
	a := mem.Wrap(append([]uint16(nil), values...))
	return a
}

// TestTable_Mod7 applies v mod 7 over a small direct source.
func TestTable_Mod7(t *testing.T) {
	src := charSource(t, []uint16{0, 7, 65535, 6})
	table, err := New[int32](src, func(x float64) float64 { return math.Mod(x, 7) }, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	dest := make([]int32, 4)
	if err := table.GetData(0, dest, 0, 4); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	want := []int32{0, 0, 1, 6}
	for i := range want {
		if dest[i] != want[i] {
			t.Fatalf("index %d got %d, want %d", i, dest[i], want[i])
		}
	}
}

// TestTable_Truncation checks byte clamping at both bounds.
func TestTable_Truncation(t *testing.T) {
	src := charSource(t, []uint16{0, 100, 1000})
	f := func(x float64) float64 { return x - 50 }

	clamped, err := New[uint8](src, f, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	dest := make([]uint8, 3)
	if err := clamped.GetData(0, dest, 0, 3); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	want := []uint8{0, 50, 255}
	for i := range want {
		if dest[i] != want[i] {
			t.Fatalf("clamped index %d got %d, want %d", i, dest[i], want[i])
		}
	}

	wrapped, err := New[uint8](src, f, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := wrapped.GetData(0, dest, 0, 3); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	want = []uint8{206, 50, 950 & 0xFF}
	for i := range want {
		if dest[i] != want[i] {
			t.Fatalf("wrapped index %d got %d, want %d", i, dest[i], want[i])
		}
	}
}

// TestTable_NaN checks that a NaN-producing function maps to zero for
// integer destinations.
func TestTable_NaN(t *testing.T) {
	src := charSource(t, []uint16{0, 1})
	table, err := New[int64](src, func(x float64) float64 { return math.NaN() }, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	dest := make([]int64, 2)
	if err := table.GetData(0, dest, 0, 2); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	if dest[0] != 0 || dest[1] != 0 {
		t.Fatalf("NaN results: got %v, want zeros", dest)
	}
}

// TestTable_PooledPath streams a source with hidden direct access, which
// takes the pooled scratch branch, and compares against the direct path.
func TestTable_PooledPath(t *testing.T) {
	const n = 3 * scratchLen / 2
	values := make([]uint16, n)
	for i := range values {
		values[i] = uint16(i * 31)
	}
	src := mem.Wrap(values)
	f := func(x float64) float64 { return math.Sqrt(x) }

	direct, err := New[float64](src, f, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	pooled, err := New[float64](mem.AsImmutable[uint16](src), f, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	a := make([]float64, n)
	b := make([]float64, n)
	if err := direct.GetData(0, a, 0, n); err != nil {
		t.Fatalf("direct GetData failed: %v", err)
	}
	if err := pooled.GetData(0, b, 0, n); err != nil {
		t.Fatalf("pooled GetData failed: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: direct %v, pooled %v", i, a[i], b[i])
		}
	}
}

// TestTable_Concurrent streams one shared table from several goroutines.
func TestTable_Concurrent(t *testing.T) {
	const n = 4096
	values := make([]uint16, n)
	for i := range values {
		values[i] = uint16(i)
	}
	table, err := New[int32](mem.Wrap(values), func(x float64) float64 { return x * 2 }, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dest := make([]int32, n)
			for round := 0; round < 50; round++ {
				if err := table.GetData(0, dest, 0, n); err != nil {
					t.Errorf("GetData failed: %v", err)
					return
				}
				for i, v := range dest {
					if v != int32(i*2) {
						t.Errorf("index %d got %d, want %d", i, v, i*2)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

// TestTable_Faults checks argument validation.
func TestTable_Faults(t *testing.T) {
	src := charSource(t, []uint16{1, 2, 3})
	if _, err := New[int32](nil, math.Sqrt, false); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("nil source: got %v, want ErrInvalidArgument", err)
	}
	if _, err := New[int32](src, nil, false); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("nil function: got %v, want ErrInvalidArgument", err)
	}
	table, err := New[int32](src, math.Sqrt, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	dest := make([]int32, 3)
	if err := table.GetData(0, nil, 0, 1); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("nil dest: got %v, want ErrInvalidArgument", err)
	}
	if err := table.GetData(0, dest, 2, 2); !errors.Is(err, api.ErrIndexOutOfRange) {
		t.Fatalf("dest overflow: got %v, want ErrIndexOutOfRange", err)
	}
	if err := table.GetData(2, dest, 0, 2); !errors.Is(err, api.ErrIndexOutOfRange) {
		t.Fatalf("source overflow: got %v, want ErrIndexOutOfRange", err)
	}
	if err := table.GetData(0, dest, 0, -1); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("negative count: got %v, want ErrInvalidArgument", err)
	}
}

// TestBoolTable checks the nonzero-predicate variant.
func TestBoolTable(t *testing.T) {
	src := charSource(t, []uint16{0, 7, 14, 15})
	table, err := NewBool(src, func(x float64) float64 { return math.Mod(x, 7) })
	if err != nil {
		t.Fatalf("NewBool failed: %v", err)
	}
	dest := make([]bool, 4)
	if err := table.GetData(0, dest, 0, 4); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	want := []bool{false, false, false, true}
	for i := range want {
		if dest[i] != want[i] {
			t.Fatalf("index %d got %v, want %v", i, dest[i], want[i])
		}
	}
}
