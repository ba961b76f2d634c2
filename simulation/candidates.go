// File: candidates.go
// Role: boundary-membership query used by package cursor's Goto to decide
// whether a pending addition is currently reachable.
package simulation

import "github.com/latticecraft/crystalsim/lattice"

// IsCandidate reports whether key currently belongs to the boundary
// selected by dir, i.e. whether Toggle(key, dir) would succeed.
// Complexity: O(1).
func (s *Simulation) IsCandidate(key lattice.Key, dir Direction) bool {
	return s.boundary(dir).Contains(key)
}
