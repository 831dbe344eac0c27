// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract pooling API: reusable scratch arrays for indirect buffers and
// stream accelerators.

package api

// ArrayPool hands out fixed-length scratch slices. An array belongs to
// exactly one borrower between RequestArray and ReleaseArray; release
// must happen exactly once per acquisition, on success or failure.
type ArrayPool[E any] interface {
	// RequestArray returns a slice of exactly the pool's array length.
	RequestArray() []E

	// ReleaseArray returns a previously requested slice to the pool.
	ReleaseArray(a []E) error

	// ArrayLength returns the fixed length of pooled slices.
	ArrayLength() int
}

// PoolStats aggregates allocation/reuse counters of a pool.
type PoolStats struct {
	Allocated int64 // fresh slices created
	Reused    int64 // requests served from the pool
	Released  int64 // slices handed back
	Retained  int   // slices currently on the hot free-list
}
