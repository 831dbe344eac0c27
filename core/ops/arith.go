// File: core/ops/arith.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Elementwise arithmetic operators. Unsigned ordering for the byte and
// char kinds follows from their unsigned element types; integer clamps
// are computed in a widened int64 accumulator against the kind bounds,
// so every kind agrees on boundary values.

package ops

import "github.com/momentics/bigarray/api"

// Min replaces count elements of dest with the elementwise minimum of
// dest and src.
func Min[E api.Scalar](dest []E, destPos int, src []E, srcPos, count int) error {
	if err := RangeCheck2(len(dest), destPos, len(src), srcPos, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if src[srcPos+i] < dest[destPos+i] {
			dest[destPos+i] = src[srcPos+i]
		}
	}
	return nil
}

// Max replaces count elements of dest with the elementwise maximum of
// dest and src.
func Max[E api.Scalar](dest []E, destPos int, src []E, srcPos, count int) error {
	if err := RangeCheck2(len(dest), destPos, len(src), srcPos, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if src[srcPos+i] > dest[destPos+i] {
			dest[destPos+i] = src[srcPos+i]
		}
	}
	return nil
}

// AddToInt64 accumulates count source elements into an int64 accumulator
// region: dest[destPos+i] += src[srcPos+i].
func AddToInt64[E api.IntScalar](dest []int64, destPos int, src []E, srcPos, count int) error {
	if err := RangeCheck2(len(dest), destPos, len(src), srcPos, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		dest[destPos+i] += int64(src[srcPos+i])
	}
	return nil
}

// AddToFloat64 accumulates count source elements, multiplied by mult,
// into a float64 accumulator region: dest[destPos+i] += src[srcPos+i]*mult.
// mult of 0 is a checked no-op; +1 and -1 skip the multiplication.
func AddToFloat64[E api.Scalar](dest []float64, destPos int, src []E, srcPos, count int, mult float64) error {
	if err := RangeCheck2(len(dest), destPos, len(src), srcPos, count); err != nil {
		return err
	}
	switch mult {
	case 0:
	case 1:
		for i := 0; i < count; i++ {
			dest[destPos+i] += float64(src[srcPos+i])
		}
	case -1:
		for i := 0; i < count; i++ {
			dest[destPos+i] -= float64(src[srcPos+i])
		}
	default:
		for i := 0; i < count; i++ {
			dest[destPos+i] += float64(src[srcPos+i]) * mult
		}
	}
	return nil
}

// Subtract replaces count elements of dest with dest-src. When
// truncateOverflows is set, integer results clamp to the element kind's
// representable range instead of wrapping: unsigned kinds clamp at 0,
// the int kind clamps at both int32 bounds. The flag is ignored for the
// long, float and double kinds, whose arithmetic never truncates.
func Subtract[E api.Scalar](dest []E, destPos int, src []E, srcPos, count int, truncateOverflows bool) error {
	if err := RangeCheck2(len(dest), destPos, len(src), srcPos, count); err != nil {
		return err
	}
	k := api.KindOf[E]()
	if truncateOverflows && k.IsInteger() && k != api.Long {
		lo, hi := k.MinValue(), k.MaxValue()
		for i := 0; i < count; i++ {
			v := int64(dest[destPos+i]) - int64(src[srcPos+i])
			if v < lo {
				v = lo
			} else if v > hi {
				v = hi
			}
			dest[destPos+i] = E(v)
		}
		return nil
	}
	for i := 0; i < count; i++ {
		dest[destPos+i] -= src[srcPos+i]
	}
	return nil
}

// AbsDiff replaces count elements of dest with |dest-src|. When
// truncateOverflows is set, the int kind clamps the magnitude to the
// int32 maximum instead of wrapping; the other kinds never overflow
// here, since the difference of two representable unsigned values is
// representable.
func AbsDiff[E api.Scalar](dest []E, destPos int, src []E, srcPos, count int, truncateOverflows bool) error {
	if err := RangeCheck2(len(dest), destPos, len(src), srcPos, count); err != nil {
		return err
	}
	k := api.KindOf[E]()
	if truncateOverflows && k.IsInteger() && k != api.Long {
		hi := k.MaxValue()
		for i := 0; i < count; i++ {
			v := int64(dest[destPos+i]) - int64(src[srcPos+i])
			if v < 0 {
				v = -v
			}
			if v > hi {
				v = hi
			}
			dest[destPos+i] = E(v)
		}
		return nil
	}
	for i := 0; i < count; i++ {
		if dest[destPos+i] >= src[srcPos+i] {
			dest[destPos+i] -= src[srcPos+i]
		} else {
			dest[destPos+i] = src[srcPos+i] - dest[destPos+i]
		}
	}
	return nil
}
