package bucketq

import "errors"

// Sentinel errors for bucketq operations.
var (
	// ErrUnsetAbsent indicates Remove (or an Increment that resolves to a
	// removal) was called on a key that is not currently present. Per the
	// package contract this is a programming error, not a recoverable
	// condition.
	ErrUnsetAbsent = errors.New("bucketq: remove on absent key")

	// ErrPriorityOutOfRange indicates a caller supplied a priority outside
	// [0, Levels). Overflow priorities are a programming error.
	ErrPriorityOutOfRange = errors.New("bucketq: priority out of range")

	// ErrInvalidLevels indicates a Container was constructed with Levels <= 0.
	ErrInvalidLevels = errors.New("bucketq: levels must be positive")
)

// Key is the type of elements stored in a Container. The container treats
// keys as opaque non-negative integers (lattice vertex keys, in this
// module); per-key bookkeeping is a map, so keys need not be contiguous.
type Key = uint64

// entry records where a key currently lives: its priority level and its
// index within that level's dense slice.
type entry struct {
	priority int
	index    int
}

// Container is a bucketed priority container over Key. The zero value is
// not usable; construct with New.
//
// Invariants (checked by CheckInvariants):
//   - priorityOf(k) == p  iff  levels[p] contains k at position index[k].
//   - MinPriority(), when present (ok == true), is the smallest p with a
//     non-empty levels[p]; that level is non-empty.
//   - size equals the sum of len(levels[p]) over all p.
type Container struct {
	numLevels int
	levels    [][]Key       // levels[p] is a dense slice of keys at priority p
	entries   map[Key]entry // key -> (priority, index within levels[priority])
	nonEmpty  []uint64      // bitmap: bit p set iff levels[p] is non-empty
	size      int
}

// New constructs an empty Container with the given number of priority
// levels, indexed 0..levels-1. Returns ErrInvalidLevels if levels <= 0.
func New(levels int) (*Container, error) {
	if levels <= 0 {
		return nil, ErrInvalidLevels
	}

	return &Container{
		numLevels: levels,
		levels:    make([][]Key, levels),
		entries:   make(map[Key]entry),
		nonEmpty:  make([]uint64, (levels+63)/64),
	}, nil
}
