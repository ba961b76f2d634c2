// File: lattice.go
// Role: vertex interning (vector <-> dense key) and lazy, cached neighbor
// materialisation.
package lattice

import (
	"errors"
	"fmt"
)

// Key is a dense, non-negative integer identifying an interned vertex.
// Key 0 is always the origin (the zero vector of the lattice's dimension).
type Key = uint64

// ErrUnallocatedKey indicates VectorOf or Neighbors was called with a key
// that has never been interned. This is a programming error.
var ErrUnallocatedKey = errors.New("lattice: key not allocated")

// Lattice is a triple (neighborhood, key<->vector interning tables, cached
// neighbor table). It grows only: once a vector is interned it keeps its
// key for the Lattice's lifetime.
//
// Lattice is not safe for concurrent mutation; callers must serialise
// access.
type Lattice struct {
	neighborhood *Neighborhood
	vectors      []Vector       // key -> vector, dense, grow-only
	keys         map[string]Key // vector.key() -> key
	neighbors    map[Key][]Key  // key -> cached neighbor keys (len == degree), populated lazily
}

// New constructs a Lattice over the given Neighborhood and eagerly interns
// the origin vector (the zero vector of the neighborhood's dimension) as
// key 0.
func New(n *Neighborhood) *Lattice {
	l := &Lattice{
		neighborhood: n,
		vectors:      make([]Vector, 0, 64),
		keys:         make(map[string]Key, 64),
		neighbors:    make(map[Key][]Key, 64),
	}
	origin := make(Vector, n.Dim)
	l.Intern(origin)

	return l
}

// Degree returns D, the lattice's uniform neighbor count.
func (l *Lattice) Degree() int { return l.neighborhood.Degree() }

// Dim returns the lattice's vector dimension.
func (l *Lattice) Dim() int { return l.neighborhood.Dim }

// Neighborhood returns the lattice's underlying Neighborhood.
func (l *Lattice) Neighborhood() *Neighborhood { return l.neighborhood }

// Intern returns the dense key for vector, allocating a new one if this is
// the first time vector has been seen. Interning is injective: distinct
// vectors always receive distinct keys.
// Complexity: O(1) amortised (map lookup plus, on miss, append).
func (l *Lattice) Intern(vector Vector) Key {
	k := vector.key()
	if key, ok := l.keys[k]; ok {
		return key
	}

	key := Key(len(l.vectors))
	// Store a defensive copy: callers may reuse/mutate their vector slice.
	stored := append(Vector(nil), vector...)
	l.vectors = append(l.vectors, stored)
	l.keys[k] = key

	return key
}

// VectorOf returns the vector interned under key. Returns ErrUnallocatedKey
// if key was never allocated.
// Complexity: O(1).
func (l *Lattice) VectorOf(key Key) (Vector, error) {
	if key >= Key(len(l.vectors)) {
		return nil, fmt.Errorf("lattice: VectorOf(%d): %w", key, ErrUnallocatedKey)
	}

	return l.vectors[key], nil
}

// MustVectorOf is like VectorOf but panics on an unallocated key. It exists
// for hot paths (simulation's toggle loop) that already hold a key obtained
// from this same Lattice and thus know it is allocated.
func (l *Lattice) MustVectorOf(key Key) Vector {
	v, err := l.VectorOf(key)
	if err != nil {
		panic(err)
	}

	return v
}

// Neighbors returns the D interned neighbor keys of key, computed on first
// request by interning vector_of(key) + offset_i for each offset (in basis
// declaration order, then negations) and cached thereafter. Returns
// ErrUnallocatedKey if key was never allocated.
// Complexity: O(D) on first call for a given key, O(1) amortised after
// (the returned slice is cached and reused).
func (l *Lattice) Neighbors(key Key) ([]Key, error) {
	if cached, ok := l.neighbors[key]; ok {
		return cached, nil
	}

	base, err := l.VectorOf(key)
	if err != nil {
		return nil, fmt.Errorf("lattice: Neighbors(%d): %w", key, err)
	}

	offsets := l.neighborhood.Offsets
	result := make([]Key, len(offsets))
	for i, off := range offsets {
		result[i] = l.Intern(base.Add(off))
	}
	l.neighbors[key] = result

	return result, nil
}

// NumInterned returns the number of distinct vectors interned so far.
func (l *Lattice) NumInterned() int { return len(l.vectors) }
