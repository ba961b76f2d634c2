// File: directional.go
// Role: Directional, a first-class wrapper resolving a search's "toward
// the goal" / "back toward the seed" moves into concrete
// simulation.Direction values, so package search never references
// simulation.Forwards/Backwards directly (the directional wrapper of the
// additive simulation's toggle convention).
package cursor

import "github.com/latticecraft/crystalsim/simulation"

// Sign is the search's direction of travel along the population-size
// axis: Grow when the goal size is at least the seed size, Shrink
// otherwise.
type Sign int

const (
	// Grow means moving toward the goal increases atom count.
	Grow Sign = iota
	// Shrink means moving toward the goal decreases atom count.
	Shrink
)

// SignOf derives the traversal Sign from a seed size and goal size, per
// the rule: Grow if goal >= seedSize, Shrink otherwise.
func SignOf(seedSize, goal int) Sign {
	if goal >= seedSize {
		return Grow
	}

	return Shrink
}

// Directional resolves "Next" (away from the seed, toward the goal) and
// "Previous" (back toward the seed) into the simulation.Direction each
// requires, given the search's Sign. This is the sole place the
// growing/shrinking distinction is decided; package search only ever
// calls Next/Previous.
type Directional struct {
	sign Sign
}

// NewDirectional returns a Directional for the given traversal Sign.
func NewDirectional(sign Sign) Directional {
	return Directional{sign: sign}
}

// Sign returns the traversal Sign this Directional was built with.
func (d Directional) Sign() Sign { return d.sign }

// Next returns the simulation.Direction that moves one level away from
// the seed, toward the goal.
func (d Directional) Next() simulation.Direction {
	if d.sign == Grow {
		return simulation.Forwards
	}

	return simulation.Backwards
}

// Previous returns the simulation.Direction that moves one level back
// toward the seed.
func (d Directional) Previous() simulation.Direction {
	if d.sign == Grow {
		return simulation.Backwards
	}

	return simulation.Forwards
}
