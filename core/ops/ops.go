// File: core/ops/ops.go
// Package ops implements bounds-checked bulk operators over typed regions.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Every operator validates its full range before touching a single
// element, so a range fault never leaves a partial mutation behind. A
// region is a (slice, pos, count) triple; buffer windows and plain
// slices are passed the same way.

package ops

import (
	"fmt"

	"github.com/momentics/bigarray/api"
)

const (
	// fillNonBlockedLen is the count threshold above which Fill switches
	// from an element loop to repeated block copies.
	fillNonBlockedLen = 256
	// fillBlockLen is the length of the pre-filled block.
	fillBlockLen = 4 * 1024
)

// RangeCheck validates the region [pos, pos+count) against a slice of
// the given limit.
func RangeCheck(limit, pos, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative count (%d)", api.ErrInvalidArgument, count)
	}
	if pos < 0 || pos > limit-count {
		return fmt.Errorf("%w: range %d..%d, limit %d",
			api.ErrIndexOutOfRange, pos, pos+count, limit)
	}
	return nil
}

// RangeCheck2 validates a destination and a source region of one count.
func RangeCheck2(destLimit, destPos, srcLimit, srcPos, count int) error {
	if err := RangeCheck(destLimit, destPos, count); err != nil {
		return err
	}
	return RangeCheck(srcLimit, srcPos, count)
}

// Copy copies count elements from src starting at srcPos into dest
// starting at destPos. Overlapping ranges within the same region are
// handled memmove-style: the direction is detected automatically.
func Copy[E api.Scalar](dest []E, destPos int, src []E, srcPos, count int) error {
	if err := RangeCheck2(len(dest), destPos, len(src), srcPos, count); err != nil {
		return err
	}
	copy(dest[destPos:destPos+count], src[srcPos:srcPos+count])
	return nil
}

// CopyOrdered is the explicit-direction entry point for callers that
// already know the overlap direction: with reverseOrder the elements are
// moved in descending index order.
func CopyOrdered[E api.Scalar](dest []E, destPos int, src []E, srcPos, count int, reverseOrder bool) error {
	if err := RangeCheck2(len(dest), destPos, len(src), srcPos, count); err != nil {
		return err
	}
	if reverseOrder {
		for i := count - 1; i >= 0; i-- {
			dest[destPos+i] = src[srcPos+i]
		}
	} else {
		for i := 0; i < count; i++ {
			dest[destPos+i] = src[srcPos+i]
		}
	}
	return nil
}

// Swap exchanges count elements between the two regions.
func Swap[E api.Scalar](first []E, firstPos int, second []E, secondPos, count int) error {
	if err := RangeCheck2(len(first), firstPos, len(second), secondPos, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		first[firstPos+i], second[secondPos+i] = second[secondPos+i], first[firstPos+i]
	}
	return nil
}

// Fill stores value into count elements of dest starting at destPos.
// Large fills amortize per-element overhead by bulk-copying a pre-filled
// block; the zero value skips the pre-fill, since fresh native storage
// is already zero.
func Fill[E api.Scalar](dest []E, destPos, count int, value E) error {
	if err := RangeCheck(len(dest), destPos, count); err != nil {
		return err
	}
	if count < fillNonBlockedLen {
		for k := 0; k < count; k++ {
			dest[destPos+k] = value
		}
		return nil
	}
	block := make([]E, fillBlockLen)
	var zero E
	if value != zero {
		for i := range block {
			block[i] = value
		}
	}
	for ; count >= fillBlockLen; count -= fillBlockLen {
		copy(dest[destPos:destPos+fillBlockLen], block)
		destPos += fillBlockLen
	}
	copy(dest[destPos:destPos+count], block[:count])
	return nil
}
