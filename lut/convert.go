// File: lut/convert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Explicit float-to-integer conversion helpers. Go leaves out-of-range
// float-to-int conversions unspecified, so every narrowing here goes
// through checked int64 arithmetic: NaN maps to 0, infinities and
// overflow saturate.

package lut

import "math"

const (
	maxInt64Float = float64(math.MaxInt64)
	minInt64Float = float64(math.MinInt64)
)

func saturateToInt64(x float64) int64 {
	if math.IsNaN(x) {
		return 0
	}
	if x >= maxInt64Float {
		return math.MaxInt64
	}
	if x <= minInt64Float {
		return math.MinInt64
	}
	return int64(x)
}

func clampToInt64(x float64, lo, hi int64) int64 {
	v := saturateToInt64(x)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
