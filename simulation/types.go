package simulation

import (
	"errors"

	"github.com/latticecraft/crystalsim/bucketq"
	"github.com/latticecraft/crystalsim/lattice"
)

// Direction selects which boundary a simulation operation concerns.
// Forwards is growth (candidates come from the exterior boundary, added to
// S); Backwards is shrink (candidates come from the interior boundary,
// removed from S).
type Direction int

const (
	// Forwards selects the exterior boundary: candidates to add.
	Forwards Direction = iota
	// Backwards selects the interior boundary: candidates to remove.
	Backwards
)

// Sentinel errors for simulation operations. These are programming errors:
// the core may abort with diagnostic context rather than attempt recovery.
var (
	// ErrKeyNotInBoundary indicates Toggle was called with a key that is
	// not a member of the boundary selected by direction.
	ErrKeyNotInBoundary = errors.New("simulation: key not in selected boundary")

	// ErrInvariantViolation is returned by CheckInvariants when the
	// simulation's cached state disagrees with a from-scratch
	// recomputation.
	ErrInvariantViolation = errors.New("simulation: invariant violation")
)

// Simulation is the additive surface-energy simulation: a lattice plus the
// current subset's size, energy, and dual boundary priority structures.
// The subset itself is represented implicitly as the interior boundary's
// key set (every vertex of S is tracked in Interior, even isolated ones
// with priority 0 — see DESIGN.md's resolution of the interior/exterior
// removal-condition ambiguity in toggle.go's adjustNeighbor).
type Simulation struct {
	lat      *lattice.Lattice
	degree   int
	size     int
	energy   int
	interior *bucketq.Container // keys in S; priority = #neighbors in S
	exterior *bucketq.Container // keys not in S with >=1 neighbor in S; priority = D - (#neighbors in S)
}

// New constructs the initial simulation state over lat: S=∅, N=0, E=0,
// exterior contains only the origin (key 0) at priority D, interior
// empty.
func New(lat *lattice.Lattice) (*Simulation, error) {
	d := lat.Degree()
	interior, err := bucketq.New(d + 1)
	if err != nil {
		return nil, err
	}
	exterior, err := bucketq.New(d + 1)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		lat:      lat,
		degree:   d,
		interior: interior,
		exterior: exterior,
	}
	// The origin (key 0) starts with zero neighbors in S and D neighbors
	// not in S, so it seeds the exterior boundary at priority D.
	if err := exterior.InsertOrUpdate(0, d); err != nil {
		return nil, err
	}

	return s, nil
}

// Lattice returns the Simulation's underlying Lattice.
func (s *Simulation) Lattice() *lattice.Lattice { return s.lat }

// Degree returns D, the lattice's uniform neighbor count.
func (s *Simulation) Degree() int { return s.degree }

// Size returns the current subset's cardinality N.
func (s *Simulation) Size() int { return s.size }

// Energy returns the current total surface energy E.
func (s *Simulation) Energy() int { return s.energy }

// InS reports whether key is currently a member of the simulated subset.
func (s *Simulation) InS(key lattice.Key) bool { return s.interior.Contains(key) }

// boundary returns the active boundary container for direction.
func (s *Simulation) boundary(dir Direction) *bucketq.Container {
	if dir == Forwards {
		return s.exterior
	}

	return s.interior
}

// opposite returns the boundary container on the other side of dir.
func (s *Simulation) opposite(dir Direction) *bucketq.Container {
	if dir == Forwards {
		return s.interior
	}

	return s.exterior
}
