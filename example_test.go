package crystalsim_test

import (
	"fmt"

	"github.com/latticecraft/crystalsim"
	"github.com/latticecraft/crystalsim/lattice"
)

// Example drives the whole pipeline on a square lattice grown to 4 atoms
// and prints the minimum energy and optimal-shape count at the goal size:
// the single 2x2 block is the unique minimum-energy shape under TI.
func Example() {
	rep, err := crystalsim.Run(
		crystalsim.WithLatticeBasis([]lattice.Vector{{1, 0}, {0, 1}}),
		crystalsim.WithGoal(4),
		crystalsim.WithTranslationInvariant(true),
	)
	if err != nil {
		panic(err)
	}

	last := rep.Result.Levels[len(rep.Result.Levels)-1]
	fmt.Println(last.Size, last.MinEnergy, last.OptimalCrystals)
	// Output: 4 8 1
}
