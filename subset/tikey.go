// File: tikey.go
// Role: translation-invariant canonicalisation: produces a value suitable
// for a visited-set membership test where two subsets related by a pure
// lattice translation must compare equal.
package subset

import (
	"fmt"
	"hash/maphash"
	"strings"
)

// tiSeed is process-wide so that TIKey digests are stable within a single
// run (the invariant the visited set relies on); it need not be stable
// across runs or processes.
var tiSeed = maphash.MakeSeed()

// emptyTIKey is the distinguished sentinel TIKey for the empty subset.
var emptyTIKey = TIKey{digest: 0, canon: ""}

// TIKey is the translation-invariant canonical form of a Subset: the
// digest is a 64-bit hash of the canonical representation, used as the map
// key for a fast visited-set lookup; canon is the exact canonical string,
// compared on digest collision so that the visited set uses exact equality
// post-hash (see DESIGN.md's Open Question resolution).
type TIKey struct {
	digest uint64
	canon  string
}

// Equal reports whether k and j represent the same translation class.
func (k TIKey) Equal(j TIKey) bool {
	return k.digest == j.digest && k.canon == j.canon
}

// TI computes s's translation-invariant key: the empty subset maps to a
// fixed sentinel; otherwise every vertex is translated by subtracting
// First()'s vector, and the resulting sorted vector-set is hashed.
// Complexity: O(n·d) where n = s.Size() and d = s.Lattice().Dim().
func (s Subset) TI() TIKey {
	first, ok := s.First()
	if !ok {
		return emptyTIKey
	}
	origin := s.lat.MustVectorOf(first)

	var b strings.Builder
	for i, k := range s.sorted {
		v := s.lat.MustVectorOf(k)
		if i > 0 {
			b.WriteByte(';')
		}
		for j, c := range v {
			if j > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(&b, "%d", c-origin[j])
		}
	}
	canon := b.String()

	var h maphash.Hash
	h.SetSeed(tiSeed)
	_, _ = h.WriteString(canon)

	return TIKey{digest: h.Sum64(), canon: canon}
}
