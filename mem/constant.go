// File: mem/constant.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import (
	"fmt"

	"github.com/momentics/bigarray/api"
)

// Constant is a read-only array where every position yields one value.
// Indirect buffers over it load their staging slice once and skip every
// later copy.
type Constant[E api.Scalar] struct {
	length int64
	value  E
}

// NewConstant creates a constant array of the given length and value.
func NewConstant[E api.Scalar](length int64, value E) (*Constant[E], error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", api.ErrInvalidArgument, length)
	}
	return &Constant[E]{length: length, value: value}, nil
}

// Length implements api.Array.
func (c *Constant[E]) Length() int64 { return c.length }

// GetData implements api.Array.
func (c *Constant[E]) GetData(pos int64, dest []E) error {
	if err := checkRange(c.length, pos, len(dest)); err != nil {
		return err
	}
	for i := range dest {
		dest[i] = c.value
	}
	return nil
}

// IsImmutable implements api.Array.
func (c *Constant[E]) IsImmutable() bool { return true }

// IsCopyOnNextWrite implements api.Array.
func (c *Constant[E]) IsCopyOnNextWrite() bool { return false }

// IsConstant implements api.Array.
func (c *Constant[E]) IsConstant() bool { return true }

var _ api.Array[uint8] = (*Constant[uint8])(nil)
