// File: core/ops/search.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ops

import "github.com/momentics/bigarray/api"

// IndexOf returns the lowest index in [max(lowIndex,0), min(highIndex,
// len(buf))) whose element equals value, or -1 if there is no such
// element. An empty or inverted range yields -1 without touching the
// slice.
func IndexOf[E api.Scalar](buf []E, lowIndex, highIndex int, value E) int {
	maxPlus1 := min(len(buf), highIndex)
	for k := max(lowIndex, 0); k < maxPlus1; k++ {
		if buf[k] == value {
			return k
		}
	}
	return -1
}

// LastIndexOf returns the highest index in the same range whose element
// equals value, scanning backward, or -1 if there is no such element.
func LastIndexOf[E api.Scalar](buf []E, lowIndex, highIndex int, value E) int {
	low := max(lowIndex, 0)
	for k := min(len(buf), highIndex) - 1; k >= low; k-- {
		if buf[k] == value {
			return k
		}
	}
	return -1
}
