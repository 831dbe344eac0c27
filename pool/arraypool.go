// File: pool/arraypool.go
// Package pool implements reusable scratch-array pooling for indirect
// buffers and stream accelerators.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// An ArrayPool avoids allocation storms when thousands of indirect
// buffers map and unmap in sequence. A bounded hot free-list keeps the
// most recently released slices ready; everything beyond the bound
// spills into a sync.Pool, so idle slices stay reclaimable under GC
// pressure and transparently fall back to fresh allocation.

package pool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/bigarray/api"
)

// defaultMaxRetained bounds the hot free-list of one pool.
const defaultMaxRetained = 32

// ArrayPool hands out slices of one fixed length and element type.
// It is safe for concurrent use; every slice belongs to exactly one
// borrower between RequestArray and ReleaseArray.
type ArrayPool[E any] struct {
	arrayLength int
	maxRetained int

	mu   sync.Mutex
	free *queue.Queue

	soft *SyncPool[[]E]

	allocated atomic.Int64
	reused    atomic.Int64
	released  atomic.Int64
}

// NewArrayPool creates a pool of slices of the given fixed length.
// A negative length is a contract violation and panics.
func NewArrayPool[E any](arrayLength int) *ArrayPool[E] {
	if arrayLength < 0 {
		panic(fmt.Sprintf("bigarray/pool: negative arrayLength %d", arrayLength))
	}
	return &ArrayPool[E]{
		arrayLength: arrayLength,
		maxRetained: defaultMaxRetained,
		free:        queue.New(),
		soft:        NewSyncPool(func() []E { return nil }),
	}
}

// ArrayLength returns the fixed length of pooled slices.
func (p *ArrayPool[E]) ArrayLength() int {
	return p.arrayLength
}

// RequestArray returns a slice of exactly ArrayLength elements, reusing
// a pooled one when available. The contents are unspecified.
func (p *ArrayPool[E]) RequestArray() []E {
	p.mu.Lock()
	if p.free.Length() > 0 {
		a := p.free.Remove().([]E)
		p.mu.Unlock()
		p.reused.Add(1)
		return a
	}
	p.mu.Unlock()
	if a := p.soft.Get(); a != nil {
		p.reused.Add(1)
		return a
	}
	p.allocated.Add(1)
	return make([]E, p.arrayLength)
}

// ReleaseArray hands a slice back to the pool. Releasing a slice of the
// wrong length is an argument fault: it cannot have come from this pool.
func (p *ArrayPool[E]) ReleaseArray(a []E) error {
	if len(a) != p.arrayLength {
		return fmt.Errorf("%w: released array length %d, pool array length %d",
			api.ErrInvalidArgument, len(a), p.arrayLength)
	}
	p.released.Add(1)
	p.mu.Lock()
	if p.free.Length() < p.maxRetained {
		p.free.Add(a)
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()
	p.soft.Put(a)
	return nil
}

// Stats returns a snapshot of the pool counters.
func (p *ArrayPool[E]) Stats() api.PoolStats {
	p.mu.Lock()
	retained := p.free.Length()
	p.mu.Unlock()
	return api.PoolStats{
		Allocated: p.allocated.Load(),
		Reused:    p.reused.Load(),
		Released:  p.released.Load(),
		Retained:  retained,
	}
}

var _ api.ArrayPool[byte] = (*ArrayPool[byte])(nil)
