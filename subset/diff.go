// File: diff.go
// Role: symmetric-difference enumeration between two Subsets, used by
// package cursor to compute the minimal sequence of toggles needed to move
// an additive simulation from one subset to another.
package subset

import "github.com/latticecraft/crystalsim/lattice"

// Direction tags a Diff entry: ADD means the vertex is present in the
// target (b) but not the source (a); REMOVE means the reverse.
type Direction int

const (
	// Add indicates a vertex present in b\a.
	Add Direction = iota
	// Remove indicates a vertex present in a\b.
	Remove
)

// DiffEntry is one element of the symmetric difference between two
// Subsets.
type DiffEntry struct {
	Dir Direction
	Key lattice.Key
}

// Diff enumerates the symmetric difference between a and b: every vertex in
// b\a tagged Add, and every vertex in a\b tagged Remove. Order is
// unspecified beyond being deterministic for a given (a, b) pair (both
// sides are walked in canonical sorted order).
// Complexity: O(|a| + |b|).
func Diff(a, b Subset) []DiffEntry {
	out := make([]DiffEntry, 0, len(a.sorted)+len(b.sorted))

	bSet := make(map[lattice.Key]struct{}, len(b.sorted))
	for _, k := range b.sorted {
		bSet[k] = struct{}{}
	}
	aSet := make(map[lattice.Key]struct{}, len(a.sorted))
	for _, k := range a.sorted {
		aSet[k] = struct{}{}
	}

	for _, k := range a.sorted {
		if _, ok := bSet[k]; !ok {
			out = append(out, DiffEntry{Dir: Remove, Key: k})
		}
	}
	for _, k := range b.sorted {
		if _, ok := aSet[k]; !ok {
			out = append(out, DiffEntry{Dir: Add, Key: k})
		}
	}

	return out
}
