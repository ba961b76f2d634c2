// File: cursor.go
// Role: Cursor, pairing a simulation.Simulation with the subset.Subset it
// currently mirrors, plus the Goto operation that replays a diff as a
// sequence of toggles.
package cursor

import (
	"errors"
	"fmt"

	"github.com/latticecraft/crystalsim/lattice"
	"github.com/latticecraft/crystalsim/simulation"
	"github.com/latticecraft/crystalsim/subset"
)

// ErrUnreachable is returned by Goto when the target subset cannot be
// reached from the current one by a sequence of connected-growth toggles
// — every add must, at the moment it is applied, have at least one
// neighbor already present (from the empty subset, only the origin can be
// added).
var ErrUnreachable = errors.New("cursor: target subset unreachable by connected toggles")

// Cursor wraps a *simulation.Simulation and the subset.Subset it currently
// represents, kept in lockstep: every mutating call updates both. It also
// owns an energy memoisation cache, keyed by translation class since
// surface energy is itself translation-invariant.
type Cursor struct {
	sim         *simulation.Simulation
	current     subset.Subset
	seed        subset.Subset
	energyCache map[subset.TIKey]int
}

// New constructs a Cursor at the empty subset over lat.
func New(lat *lattice.Lattice) (*Cursor, error) {
	sim, err := simulation.New(lat)
	if err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}
	empty := subset.Empty(lat)

	return &Cursor{sim: sim, current: empty, seed: empty, energyCache: make(map[subset.TIKey]int)}, nil
}

// NewSeeded constructs a Cursor over lat and drives it to seed, recording
// seed as the value InitialSubset returns.
func NewSeeded(lat *lattice.Lattice, seed subset.Subset) (*Cursor, error) {
	c, err := New(lat)
	if err != nil {
		return nil, err
	}
	if seed.Size() > 0 {
		if err := c.Goto(seed); err != nil {
			return nil, fmt.Errorf("cursor: NewSeeded: %w", err)
		}
	}
	c.seed = seed

	return c, nil
}

// Simulation returns the underlying Simulation.
func (c *Cursor) Simulation() *simulation.Simulation { return c.sim }

// Current returns the Subset the cursor currently represents.
func (c *Cursor) Current() subset.Subset { return c.current }

// InitialSubset returns the seed population the Cursor was constructed
// with (the empty subset, unless built via NewSeeded).
func (c *Cursor) InitialSubset() subset.Subset { return c.seed }

// Size returns the current subset's cardinality.
func (c *Cursor) Size() int { return c.sim.Size() }

// Energy returns s's surface energy, driving the cursor to s (via Goto)
// only on a cache miss; the result is memoised by s's translation class,
// so repeated queries for translates of the same shape cost O(1) after
// the first.
func (c *Cursor) Energy(s subset.Subset) (int, error) {
	ti := s.TI()
	if e, ok := c.energyCache[ti]; ok {
		return e, nil
	}
	if err := c.Goto(s); err != nil {
		return 0, fmt.Errorf("cursor: Energy: %w", err)
	}
	e := c.sim.Energy()
	c.energyCache[ti] = e

	return e, nil
}

// NeighborsOf drives the cursor to s, then returns one child Subset per
// locally energy-minimising candidate in the boundary dir selects (the
// simulation's current minimum-priority bucket, not every boundary
// member) — an add for simulation.Forwards, a remove for
// simulation.Backwards.
func (c *Cursor) NeighborsOf(s subset.Subset, dir simulation.Direction) ([]subset.Subset, error) {
	if err := c.Goto(s); err != nil {
		return nil, fmt.Errorf("cursor: NeighborsOf: %w", err)
	}

	cands := c.sim.NextCandidates(dir)
	out := make([]subset.Subset, 0, len(cands))
	for _, k := range cands {
		if dir == simulation.Forwards {
			out = append(out, s.Add(k))
		} else {
			out = append(out, s.Remove(k))
		}
	}

	return out, nil
}

// Step toggles key in direction dir and updates the mirrored Subset to
// match. Returns simulation.ErrKeyNotInBoundary if key is not currently a
// member of the boundary dir selects.
func (c *Cursor) Step(key lattice.Key, dir simulation.Direction) error {
	if err := c.sim.Toggle(key, dir); err != nil {
		return err
	}

	if dir == simulation.Forwards {
		c.current = c.current.Add(key)
	} else {
		c.current = c.current.Remove(key)
	}

	return nil
}

// Goto drives the cursor from its current subset to target by replaying
// their symmetric difference as a sequence of toggles: every key in
// target but not current is added, every key in current but not target is
// removed. Additions run first, in passes, each pass adding every pending
// key already adjacent to the (still-shrinking-only-later) subset, until
// either all pending adds are applied or a pass makes no progress (target
// is not reachable by connected growth, in which case Goto returns
// ErrUnreachable and leaves the cursor at whatever intermediate state it
// reached). Removals are applied only once every addition has landed:
// removing a key can only ever cost connectivity, never grant it, so
// deferring removals behind additions means a pending add can still reach
// through a key that is about to be removed, rather than finding it
// already gone.
func (c *Cursor) Goto(target subset.Subset) error {
	diff := subset.Diff(c.current, target)

	var adds, removes []lattice.Key
	for _, e := range diff {
		if e.Dir == subset.Remove {
			removes = append(removes, e.Key)
		} else {
			adds = append(adds, e.Key)
		}
	}

	for len(adds) > 0 {
		remaining := adds[:0]
		progressed := false
		for _, k := range adds {
			if c.sim.IsCandidate(k, simulation.Forwards) {
				if err := c.Step(k, simulation.Forwards); err != nil {
					return fmt.Errorf("cursor: Goto: adding %d: %w", k, err)
				}
				progressed = true
				continue
			}
			remaining = append(remaining, k)
		}
		adds = remaining
		if !progressed && len(adds) > 0 {
			return fmt.Errorf("cursor: Goto: %w", ErrUnreachable)
		}
	}

	for _, k := range removes {
		if err := c.Step(k, simulation.Backwards); err != nil {
			return fmt.Errorf("cursor: Goto: removing %d: %w", k, err)
		}
	}

	return nil
}
