// File: subset.go
// Role: the Subset (crystal) value type: construction, Add/Remove,
// membership, size, "first" canonical element, sorted iteration.
package subset

import (
	"sort"

	"github.com/latticecraft/crystalsim/lattice"
)

// Subset is an immutable, unordered set of lattice vertex keys, bound to a
// single *lattice.Lattice for vector lookups (needed to order vertices
// lexicographically and to compute the translation-invariant key).
//
// Two Subsets sharing a Lattice and containing the same keys are
// interchangeable; Subset does not implement Go's comparable interface
// directly (it holds a slice), so use Equal, or the TIKey returned by TI,
// for set membership tests.
type Subset struct {
	lat    *lattice.Lattice
	sorted []lattice.Key // ascending by vector lexicographic order; the canonical representation
}

// Empty returns the empty Subset over lat.
func Empty(lat *lattice.Lattice) Subset {
	return Subset{lat: lat}
}

// Of builds a Subset from seed, deduplicating and sorting by vector
// lexicographic order. seed vertices are interned into lat if not already
// known.
func Of(lat *lattice.Lattice, seed []lattice.Vector) Subset {
	keys := make(map[lattice.Key]struct{}, len(seed))
	for _, v := range seed {
		keys[lat.Intern(v)] = struct{}{}
	}

	return Subset{lat: lat, sorted: sortedKeys(lat, keys)}
}

// Size returns the number of vertices in the subset.
func (s Subset) Size() int { return len(s.sorted) }

// Lattice returns the Lattice this Subset is bound to.
func (s Subset) Lattice() *lattice.Lattice { return s.lat }

// Contains reports whether key is a member.
// Complexity: O(n) linear scan — the small crystal sizes this domain
// produces make a second, key-ordered index not worth the bookkeeping.
func (s Subset) Contains(key lattice.Key) bool {
	for _, k := range s.sorted {
		if k == key {
			return true
		}
	}

	return false
}

// Keys returns the subset's vertex keys in canonical (vector-lexicographic)
// order. The returned slice must not be mutated.
func (s Subset) Keys() []lattice.Key { return s.sorted }

// IterSorted returns the subset's vertices, as vectors, in deterministic
// lexicographic order — the representation package report dumps to text.
func (s Subset) IterSorted() []lattice.Vector {
	out := make([]lattice.Vector, len(s.sorted))
	for i, k := range s.sorted {
		out[i] = s.lat.MustVectorOf(k)
	}

	return out
}

// First returns the canonical element of a nonempty Subset: the smallest
// vertex in lexicographic order on the underlying vectors. Returns
// (0, false) for the empty subset.
func (s Subset) First() (lattice.Key, bool) {
	if len(s.sorted) == 0 {
		return 0, false
	}

	return s.sorted[0], true
}

// Add returns a new Subset with key inserted. If key is already present,
// returns s unchanged (by value).
func (s Subset) Add(key lattice.Key) Subset {
	if s.Contains(key) {
		return s
	}
	next := make([]lattice.Key, len(s.sorted), len(s.sorted)+1)
	copy(next, s.sorted)
	next = insertSorted(s.lat, next, key)

	return Subset{lat: s.lat, sorted: next}
}

// Remove returns a new Subset with key removed. If key is absent, returns s
// unchanged (by value).
func (s Subset) Remove(key lattice.Key) Subset {
	idx := -1
	for i, k := range s.sorted {
		if k == key {
			idx = i
			break
		}
	}
	if idx == -1 {
		return s
	}
	next := make([]lattice.Key, 0, len(s.sorted)-1)
	next = append(next, s.sorted[:idx]...)
	next = append(next, s.sorted[idx+1:]...)

	return Subset{lat: s.lat, sorted: next}
}

// Equal reports whether s and t contain exactly the same keys. Both must be
// bound to the same Lattice.
func (s Subset) Equal(t Subset) bool {
	if len(s.sorted) != len(t.sorted) {
		return false
	}
	for i := range s.sorted {
		if s.sorted[i] != t.sorted[i] {
			return false
		}
	}

	return true
}

// sortedKeys returns the members of keys sorted by vector lexicographic
// order.
func sortedKeys(lat *lattice.Lattice, keys map[lattice.Key]struct{}) []lattice.Key {
	out := make([]lattice.Key, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessVector(lat, out[i], out[j])
	})

	return out
}

// insertSorted inserts key into a slice already sorted by vector
// lexicographic order, preserving order. Complexity O(n); acceptable for
// the small crystal sizes this domain targets.
func insertSorted(lat *lattice.Lattice, sorted []lattice.Key, key lattice.Key) []lattice.Key {
	i := sort.Search(len(sorted), func(i int) bool {
		return lessVector(lat, key, sorted[i]) || sorted[i] == key
	})
	sorted = append(sorted, 0)
	copy(sorted[i+1:], sorted[i:])
	sorted[i] = key

	return sorted
}

// lessVector reports whether a's vector sorts before b's vector in
// lexicographic order.
func lessVector(lat *lattice.Lattice, a, b lattice.Key) bool {
	va := lat.MustVectorOf(a)
	vb := lat.MustVectorOf(b)
	for i := 0; i < len(va) && i < len(vb); i++ {
		if va[i] != vb[i] {
			return va[i] < vb[i]
		}
	}

	return len(va) < len(vb)
}
