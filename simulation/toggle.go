// File: toggle.go
// Role: NextCandidates and Toggle, the O(degree) incremental update at the
// heart of the additive simulation.
package simulation

import (
	"fmt"

	"github.com/latticecraft/crystalsim/lattice"
)

// NextCandidates returns a read-only view of the minimum-priority keys in
// the boundary selected by direction: Forwards yields exterior candidates
// to add (those whose addition maximally reduces surface energy),
// Backwards yields interior candidates to remove. The view is empty only
// when that boundary itself is empty — for Forwards this happens only
// transiently never in a reachable state (the exterior always contains at
// least the origin when S=∅, and at least one vertex whenever S is a
// proper subset of the lattice); for Backwards it is empty exactly when
// S=∅.
// Complexity: O(1).
func (s *Simulation) NextCandidates(dir Direction) []lattice.Key {
	return s.boundary(dir).MinBucket()
}

// Toggle moves key across the boundary selected by dir: Forwards adds key
// to S (key must be in the exterior boundary); Backwards removes key from
// S (key must be in the interior boundary). It updates N, E, both
// boundaries, and the priorities of all of key's D neighbors, in O(D) time.
//
// Returns ErrKeyNotInBoundary if key is not currently a member of the
// boundary selected by dir.
func (s *Simulation) Toggle(key lattice.Key, dir Direction) error {
	active := s.boundary(dir)
	opp := s.opposite(dir)

	pi, ok := active.PriorityOf(key)
	if !ok {
		return fmt.Errorf("simulation: Toggle(%d, %v): %w", key, dir, ErrKeyNotInBoundary)
	}

	delta := 1 // key's change in S-membership: +1 joining (Forwards), -1 leaving (Backwards)
	if dir == Backwards {
		delta = -1
	}

	s.size += delta
	s.energy += 2*pi - s.degree

	if err := active.Remove(key); err != nil {
		return fmt.Errorf("simulation: Toggle: removing key from active boundary: %w", err)
	}
	// Interior membership is unconditional on S ("member of S" alone, even
	// an isolated atom with zero neighbors in S), so a Forwards join always
	// lands key in the interior. Exterior membership requires >=1 neighbor
	// in S (the origin's initial bootstrap state is the sole carve-out,
	// seeded directly in New); a Backwards leave whose old interior
	// priority pi is 0 means key had no neighbors in S even while it was a
	// member, so it gains none by leaving and must not re-enter the
	// exterior at all.
	if dir == Forwards || pi > 0 {
		if err := opp.InsertOrUpdate(key, s.degree-pi); err != nil {
			return fmt.Errorf("simulation: Toggle: inserting key into opposite boundary: %w", err)
		}
	}

	neighbors, err := s.lat.Neighbors(key)
	if err != nil {
		return fmt.Errorf("simulation: Toggle: %w", err)
	}
	for _, n := range neighbors {
		if err := s.adjustNeighbor(n, delta); err != nil {
			return err
		}
	}

	// S=∅ again: restore the bootstrap exterior (the origin at priority D),
	// exactly as New seeds it.
	if s.size == 0 {
		if err := s.exterior.InsertOrUpdate(0, s.degree); err != nil {
			return fmt.Errorf("simulation: Toggle: restoring origin in exterior: %w", err)
		}
	}

	return nil
}

// adjustNeighbor updates neighbor n's bookkeeping after key's S-membership
// changed by delta (+1 on join, -1 on leave). n itself does not change
// S-membership here; only its recorded neighbor-in-S count does.
//
// Three cases:
//   - n already in interior: its priority (neighbors-in-S count, stored
//     directly) changes by delta.
//   - n already in exterior: its priority (D - neighbors-in-S count,
//     stored complemented) changes by -delta; if this reaches D, n has
//     lost its last neighbor in S and must leave the exterior boundary
//     (exterior membership requires >=1 neighbor in S).
//   - n in neither (untouched): only possible when delta == +1 (key
//     joining S is n's first neighbor in S); n enters the exterior
//     boundary at priority D-1.
func (s *Simulation) adjustNeighbor(n lattice.Key, delta int) error {
	if p, ok := s.interior.PriorityOf(n); ok {
		if err := s.interior.InsertOrUpdate(n, p+delta); err != nil {
			return fmt.Errorf("simulation: adjustNeighbor(interior, %d): %w", n, err)
		}

		return nil
	}

	if p, ok := s.exterior.PriorityOf(n); ok {
		next := p - delta
		if next == s.degree {
			if err := s.exterior.Remove(n); err != nil {
				return fmt.Errorf("simulation: adjustNeighbor(exterior remove, %d): %w", n, err)
			}

			return nil
		}
		if err := s.exterior.InsertOrUpdate(n, next); err != nil {
			return fmt.Errorf("simulation: adjustNeighbor(exterior, %d): %w", n, err)
		}

		return nil
	}

	// Untouched: only reachable when delta == +1 (see doc comment).
	if err := s.exterior.InsertOrUpdate(n, s.degree-1); err != nil {
		return fmt.Errorf("simulation: adjustNeighbor(exterior insert, %d): %w", n, err)
	}

	return nil
}
