// File: mem/mem_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"errors"
	"testing"

	"github.com/momentics/bigarray/api"
)

// TestArray_RoundTrip checks bulk access and range validation.
func TestArray_RoundTrip(t *testing.T) {
	a, err := New[int32](10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.SetData(3, []int32{7, 8, 9}); err != nil {
		t.Fatalf("SetData failed: %v", err)
	}
	got := make([]int32, 5)
	if err := a.GetData(2, got); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	want := []int32{0, 7, 8, 9, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d got %d, want %d", i, got[i], want[i])
		}
	}
	if err := a.GetData(8, got); !errors.Is(err, api.ErrIndexOutOfRange) {
		t.Fatalf("range past length: got %v, want ErrIndexOutOfRange", err)
	}
	if err := a.SetData(-1, got); !errors.Is(err, api.ErrIndexOutOfRange) {
		t.Fatalf("negative pos: got %v, want ErrIndexOutOfRange", err)
	}
	if _, err := New[int32](-1); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("negative length: got %v, want ErrInvalidArgument", err)
	}
}

// TestWrap_Aliases checks that Wrap shares storage with the caller.
func TestWrap_Aliases(t *testing.T) {
	backing := []uint8{1, 2, 3}
	a := Wrap(backing)
	if err := a.SetData(1, []uint8{9}); err != nil {
		t.Fatalf("SetData failed: %v", err)
	}
	if backing[1] != 9 {
		t.Fatalf("wrapped slice not aliased: got %d", backing[1])
	}
	if !a.HasNativeSlice() || &a.NativeSlice()[0] != &backing[0] {
		t.Fatal("native slice must alias the wrapped storage")
	}
}

// TestAsImmutable checks that the view reads through and hides every
// mutation capability.
func TestAsImmutable(t *testing.T) {
	a, _ := New[float32](4)
	if err := a.SetData(0, []float32{1, 2, 3, 4}); err != nil {
		t.Fatalf("SetData failed: %v", err)
	}
	v := AsImmutable[float32](a)
	if !v.IsImmutable() {
		t.Fatal("view must report immutable")
	}
	if _, ok := v.(api.UpdatableArray[float32]); ok {
		t.Fatal("immutable view must not be updatable")
	}
	if _, ok := v.(api.DirectAccessible[float32]); ok {
		t.Fatal("immutable view must not expose direct access")
	}
	got := make([]float32, 4)
	if err := v.GetData(0, got); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	if got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

// TestCopyOnNextWrite checks the clone-on-first-write transition and the
// direct-eligibility flip that comes with it.
func TestCopyOnNextWrite(t *testing.T) {
	base, _ := New[int64](5)
	if err := base.SetData(0, []int64{1, 2, 3, 4, 5}); err != nil {
		t.Fatalf("SetData failed: %v", err)
	}
	cow := CopyOnNextWrite(base)
	if !cow.IsCopyOnNextWrite() {
		t.Fatal("fresh wrapper must report copy-on-next-write")
	}
	da, ok := cow.(api.DirectAccessible[int64])
	if !ok {
		t.Fatal("wrapper must implement the direct probe")
	}
	if da.HasNativeSlice() {
		t.Fatal("native slice must be unavailable before the clone")
	}

	if err := cow.SetData(1, []int64{-2}); err != nil {
		t.Fatalf("SetData failed: %v", err)
	}
	if cow.IsCopyOnNextWrite() {
		t.Fatal("wrapper must stop reporting copy-on-next-write after the clone")
	}
	if !da.HasNativeSlice() {
		t.Fatal("native slice must be available after the clone")
	}

	// The original storage survived the write.
	got := make([]int64, 5)
	if err := base.GetData(0, got); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	if got[1] != 2 {
		t.Fatalf("base modified through the wrapper: got %d", got[1])
	}
	if err := cow.GetData(0, got); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	if got[1] != -2 {
		t.Fatalf("wrapper lost the write: got %d", got[1])
	}
}

// TestConstant checks the repeated-value generator.
func TestConstant(t *testing.T) {
	c, err := NewConstant[uint16](100, 0xBEEF)
	if err != nil {
		t.Fatalf("NewConstant failed: %v", err)
	}
	if !c.IsConstant() || !c.IsImmutable() {
		t.Fatal("constant array must report constant and immutable")
	}
	got := make([]uint16, 10)
	if err := c.GetData(90, got); err != nil {
		t.Fatalf("GetData failed: %v", err)
	}
	for i, v := range got {
		if v != 0xBEEF {
			t.Fatalf("index %d got %#x", i, v)
		}
	}
	if err := c.GetData(91, got); !errors.Is(err, api.ErrIndexOutOfRange) {
		t.Fatalf("range past length: got %v, want ErrIndexOutOfRange", err)
	}
}

// TestBitArray checks packed single-bit and bulk access.
func TestBitArray(t *testing.T) {
	b, err := NewBits(130)
	if err != nil {
		t.Fatalf("NewBits failed: %v", err)
	}
	for i := int64(0); i < 130; i += 5 {
		if err := b.SetBit(i, true); err != nil {
			t.Fatalf("SetBit failed: %v", err)
		}
	}
	words := make([]uint64, 3)
	if err := b.GetBits(64, words, 0, 66); err != nil {
		t.Fatalf("GetBits failed: %v", err)
	}
	for i := int64(0); i < 66; i++ {
		want := (64+i)%5 == 0
		got := words[i>>6]>>(uint(i)&63)&1 != 0
		if got != want {
			t.Fatalf("bit %d got %v, want %v", i, got, want)
		}
	}
	if err := b.SetBit(130, true); !errors.Is(err, api.ErrIndexOutOfRange) {
		t.Fatalf("index past length: got %v, want ErrIndexOutOfRange", err)
	}
	if _, err := WrapBits(make([]uint64, 1), 65); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("short word slice: got %v, want ErrInvalidArgument", err)
	}
}

// TestConstantBits checks the constant bit generator over word
// boundaries.
func TestConstantBits(t *testing.T) {
	c, err := NewConstantBits(100, true)
	if err != nil {
		t.Fatalf("NewConstantBits failed: %v", err)
	}
	words := []uint64{0, 0}
	if err := c.GetBits(10, words, 3, 90); err != nil {
		t.Fatalf("GetBits failed: %v", err)
	}
	for i := int64(0); i < 90; i++ {
		idx := 3 + i
		if words[idx>>6]>>(uint(idx)&63)&1 == 0 {
			t.Fatalf("bit %d is clear", idx)
		}
	}
	if words[0]&0b111 != 0 {
		t.Fatal("bits below the destination offset modified")
	}
}
