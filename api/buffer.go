// File: api/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The data-buffer contract: a movable window onto a typed array.
//
// A buffer is bound to one array and one access mode at construction.
// Map and MapNext move the window; Data exposes a native slice holding
// the mapped elements in [FromIndex, ToIndex). The slice identity may
// change after every map call, so callers must re-fetch Data each time.
// Direct buffers alias the array's own storage and are write-through;
// indirect buffers stage a private copy that Force pushes back.

package api

// AccessMode defines what a buffer is allowed to do with its array.
type AccessMode int

const (
	// ModeRead maps array data for reading only; Force is forbidden.
	ModeRead AccessMode = iota

	// ModeReadWrite maps array data for reading and writing back.
	ModeReadWrite

	// ModePrivate maps array data into scratch storage that is never
	// written back; Force is a no-op.
	ModePrivate
)

func (m AccessMode) String() string {
	switch m {
	case ModeRead:
		return "READ"
	case ModeReadWrite:
		return "READ_WRITE"
	case ModePrivate:
		return "PRIVATE"
	default:
		return "unknown"
	}
}

// DataBuffer is the buffer contract for scalar element kinds.
//
// A buffer instance is not safe for concurrent use; share the array,
// not the buffer.
type DataBuffer[E Scalar] interface {
	// Mode returns the access mode fixed at construction.
	Mode() AccessMode

	// Data returns the native slice holding the mapped elements, or nil
	// before the first map. Valid only until the next map call.
	Data() []E

	// Map positions the window at the given array offset and reads the
	// mapped elements. Equivalent to MapWith(position, Capacity(), true).
	Map(position int64) error

	// MapWith positions the window at the given array offset, limiting
	// the mapped count to maxCount. When readData is false the window
	// contents are left unspecified, as an optimization for callers that
	// will overwrite the whole window.
	MapWith(position int64, maxCount int, readData bool) error

	// MapNext advances the window past the current one:
	// Map(Position()+Count()). Before the first map it behaves as Map(0).
	MapNext() error

	// MapNextWith is MapNext with an explicit readData flag.
	MapNextWith(readData bool) error

	// Force pushes the whole mapped window back to the array. It fails
	// in ModeRead, and is a no-op for direct buffers and in ModePrivate.
	Force() error

	// ForceRange pushes back only [fromIndex, toIndex), which must be a
	// sub-range of the current [FromIndex(), ToIndex()).
	ForceRange(fromIndex, toIndex int) error

	// Position returns the array offset the window represents.
	Position() int64

	// Capacity returns the maximum number of elements one window holds.
	Capacity() int

	// FromIndex returns the start of the mapped region inside Data().
	FromIndex() int

	// ToIndex returns the end (exclusive) of the mapped region.
	ToIndex() int

	// Count returns ToIndex()-FromIndex(), the number of mapped elements.
	Count() int

	// HasData reports Count() > 0; the loop predicate for full scans.
	HasData() bool

	// IsDirect reports whether Data() aliases the array's real backing
	// storage, making writes visible without Force.
	IsDirect() bool

	// Dispose returns pooled staging storage. The buffer must not be
	// used afterwards.
	Dispose() error
}

// DataBitBuffer is the buffer contract for the packed bit kind. All
// indices are bit indices within the packed words returned by Data.
type DataBitBuffer interface {
	Mode() AccessMode
	Data() []uint64
	Map(position int64) error
	MapWith(position int64, maxCount int64, readData bool) error
	MapNext() error
	MapNextWith(readData bool) error
	Force() error
	ForceRange(fromIndex, toIndex int64) error
	Position() int64
	Capacity() int64
	FromIndex() int64
	ToIndex() int64
	Count() int64
	HasData() bool
	IsDirect() bool
	Dispose() error
}
