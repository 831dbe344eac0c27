// File: core/bits/bits.go
// Package bits implements packed-bit word primitives for the Bit element kind.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bit sequences pack into uint64 words, 64 bits per word, lowest bit
// first. All bulk operations check the full range eagerly, before any
// word is touched.

package bits

import (
	"fmt"

	"github.com/momentics/bigarray/api"
)

// WordLen is the number of bits packed into one storage word.
const WordLen = 64

// PackedLength returns the number of words needed to hold bitCount bits.
func PackedLength(bitCount int64) int64 {
	return (bitCount + 63) >> 6
}

// GetBit returns the bit at the given index.
func GetBit(words []uint64, index int64) bool {
	return words[index>>6]>>(uint(index)&63)&1 != 0
}

// SetBit sets or clears the bit at the given index.
func SetBit(words []uint64, index int64, value bool) {
	if value {
		words[index>>6] |= 1 << (uint(index) & 63)
	} else {
		words[index>>6] &^= 1 << (uint(index) & 63)
	}
}

func rangeCheck(limit int64, pos, count int64, what string) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count (%d)", api.ErrInvalidArgument, count)
	}
	if pos < 0 || pos > limit-count {
		return fmt.Errorf("%w: %s bits %d..%d, limit %d",
			api.ErrIndexOutOfRange, what, pos, pos+count, limit)
	}
	return nil
}

// FillBits sets count bits starting at pos to the given value.
func FillBits(words []uint64, pos, count int64, value bool) error {
	if err := rangeCheck(int64(len(words))*WordLen, pos, count, "fill"); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	first, last := pos>>6, (pos+count-1)>>6
	headShift := uint(pos) & 63
	if first == last {
		mask := ((uint64(1)<<uint(count) - 1) << headShift)
		if count == 64 {
			mask = ^uint64(0)
		}
		apply(words, first, mask, value)
		return nil
	}
	apply(words, first, ^uint64(0)<<headShift, value)
	for w := first + 1; w < last; w++ {
		if value {
			words[w] = ^uint64(0)
		} else {
			words[w] = 0
		}
	}
	tail := uint(pos+count) & 63
	tailMask := ^uint64(0)
	if tail != 0 {
		tailMask = uint64(1)<<tail - 1
	}
	apply(words, last, tailMask, value)
	return nil
}

func apply(words []uint64, w int64, mask uint64, value bool) {
	if value {
		words[w] |= mask
	} else {
		words[w] &^= mask
	}
}

// CopyBits copies count bits from src starting at bit srcPos into dest
// starting at bit destPos. Overlapping regions within the same word
// slice are handled memmove-style: the copy direction is chosen so the
// source is never clobbered before it is read.
func CopyBits(dest []uint64, destPos int64, src []uint64, srcPos int64, count int64) error {
	if err := rangeCheck(int64(len(dest))*WordLen, destPos, count, "dest"); err != nil {
		return err
	}
	if err := rangeCheck(int64(len(src))*WordLen, srcPos, count, "src"); err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	sameWords := &dest[0] == &src[0]
	if sameWords && destPos > srcPos && destPos < srcPos+count {
		for i := count - 1; i >= 0; i-- {
			SetBit(dest, destPos+i, GetBit(src, srcPos+i))
		}
		return nil
	}
	if uint(destPos)&63 == uint(srcPos)&63 {
		copyAligned(dest, destPos, src, srcPos, count)
		return nil
	}
	for i := int64(0); i < count; i++ {
		SetBit(dest, destPos+i, GetBit(src, srcPos+i))
	}
	return nil
}

// copyAligned moves bits whose in-word phase matches, so whole words can
// be moved after a masked head and before a masked tail.
func copyAligned(dest []uint64, destPos int64, src []uint64, srcPos int64, count int64) {
	shift := uint(destPos) & 63
	if shift != 0 {
		head := int64(WordLen) - int64(shift)
		if head > count {
			head = count
		}
		maskedCopy(dest, destPos, src, srcPos, head)
		destPos += head
		srcPos += head
		count -= head
	}
	dw, sw := destPos>>6, srcPos>>6
	whole := count >> 6
	copy(dest[dw:dw+whole], src[sw:sw+whole])
	if tail := count & 63; tail != 0 {
		maskedCopy(dest, destPos+whole<<6, src, srcPos+whole<<6, tail)
	}
}

// maskedCopy moves up to one word of phase-aligned bits.
func maskedCopy(dest []uint64, destPos int64, src []uint64, srcPos int64, count int64) {
	shift := uint(destPos) & 63
	mask := ^uint64(0) << shift
	if count+int64(shift) < 64 {
		mask &= uint64(1)<<(uint(count)+shift) - 1
	}
	w := destPos >> 6
	dest[w] = dest[w]&^mask | src[srcPos>>6]&mask
}
