// File: invariants.go
// Role: CheckInvariants, recomputing energy and boundary priorities from
// scratch by direct neighborhood inspection.
package simulation

import "fmt"

// CheckInvariants recomputes E and both boundaries' priorities from
// scratch (treating the interior boundary's key set as the authoritative
// subset S) and compares against the cached state. Returns the first
// discrepancy found, wrapping ErrInvariantViolation.
//
// Complexity: O(N*D) where N = Size() and D = Degree().
func (s *Simulation) CheckInvariants() error {
	if err := s.interior.CheckInvariants(); err != nil {
		return fmt.Errorf("simulation: interior boundary: %w", err)
	}
	if err := s.exterior.CheckInvariants(); err != nil {
		return fmt.Errorf("simulation: exterior boundary: %w", err)
	}

	// S=∅ is special: the exterior boundary is bootstrapped with the
	// origin at priority D, not derived from any neighbor of S. Every
	// other reachable state has exterior == "neighbors of S not in S",
	// checked below.
	if s.size == 0 {
		if s.energy != 0 || s.interior.Len() != 0 {
			return fmt.Errorf("simulation: %w: empty subset must have energy=0 and empty interior", ErrInvariantViolation)
		}
		if s.exterior.Len() != 1 {
			return fmt.Errorf("simulation: %w: empty subset's exterior must contain exactly the origin, got %d entries", ErrInvariantViolation, s.exterior.Len())
		}
		p, ok := s.exterior.PriorityOf(0)
		if !ok || p != s.degree {
			return fmt.Errorf("simulation: %w: empty subset's exterior origin must have priority %d, got %d (present=%v)", ErrInvariantViolation, s.degree, p, ok)
		}

		return nil
	}

	members := make(map[uint64]struct{}, s.interior.Len())
	s.interior.Keys(func(k uint64, _ int) { members[k] = struct{}{} })

	if len(members) != s.size {
		return fmt.Errorf("simulation: %w: size=%d but interior boundary has %d members", ErrInvariantViolation, s.size, len(members))
	}

	energy := 0
	exteriorSeen := make(map[uint64]struct{}, s.exterior.Len())

	for k := range members {
		nbs, err := s.lat.Neighbors(k)
		if err != nil {
			return fmt.Errorf("simulation: CheckInvariants: %w", err)
		}
		countIn := 0
		for _, n := range nbs {
			if _, inS := members[n]; inS {
				countIn++
				continue
			}
			energy++
			exteriorSeen[n] = struct{}{}
		}

		p, ok := s.interior.PriorityOf(k)
		if !ok || p != countIn {
			return fmt.Errorf("simulation: %w: interior key %d has priority %d, recomputed %d (present=%v)", ErrInvariantViolation, k, p, countIn, ok)
		}
		if _, inExt := s.exterior.PriorityOf(k); inExt {
			return fmt.Errorf("simulation: %w: key %d present in both interior and exterior", ErrInvariantViolation, k)
		}
	}

	if energy != s.energy {
		return fmt.Errorf("simulation: %w: energy=%d but recomputed %d", ErrInvariantViolation, s.energy, energy)
	}

	for k := range exteriorSeen {
		countIn := 0
		nbs, err := s.lat.Neighbors(k)
		if err != nil {
			return fmt.Errorf("simulation: CheckInvariants: %w", err)
		}
		for _, n := range nbs {
			if _, inS := members[n]; inS {
				countIn++
			}
		}
		want := s.degree - countIn
		got, ok := s.exterior.PriorityOf(k)
		if !ok {
			return fmt.Errorf("simulation: %w: vertex %d has %d neighbors in S but is absent from exterior", ErrInvariantViolation, k, countIn)
		}
		if got != want {
			return fmt.Errorf("simulation: %w: exterior key %d has priority %d, recomputed %d", ErrInvariantViolation, k, got, want)
		}
	}

	if s.exterior.Len() != len(exteriorSeen) {
		return fmt.Errorf("simulation: %w: exterior boundary has %d entries but only %d are reachable from S", ErrInvariantViolation, s.exterior.Len(), len(exteriorSeen))
	}

	return nil
}
