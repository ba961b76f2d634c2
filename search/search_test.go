package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecraft/crystalsim/lattice"
	"github.com/latticecraft/crystalsim/search"
	"github.com/latticecraft/crystalsim/subset"
)

func squareLattice(t *testing.T) *lattice.Lattice {
	t.Helper()
	n, err := lattice.NewNeighborhood([]lattice.Vector{{1, 0}, {0, 1}})
	require.NoError(t, err)

	return lattice.New(n)
}

func triangularLattice(t *testing.T) *lattice.Lattice {
	t.Helper()
	n, err := lattice.NewNeighborhood([]lattice.Vector{{1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	return lattice.New(n)
}

func fccLattice(t *testing.T) *lattice.Lattice {
	t.Helper()
	n, err := lattice.NewNeighborhood([]lattice.Vector{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{-1, 0, 1}, {1, -1, 0}, {0, 1, -1},
	})
	require.NoError(t, err)

	return lattice.New(n)
}

// TestRun_EmptySeedGoalZero: an empty seed with goal 0 visits exactly one
// state, with zero energy and a single optimal crystal.
func TestRun_EmptySeedGoalZero(t *testing.T) {
	l := squareLattice(t)
	res, err := search.Run(l, search.WithGoal(0))
	require.NoError(t, err)
	require.Len(t, res.Levels, 1)

	lvl := res.Levels[0]
	assert.True(t, lvl.HasAny)
	assert.Equal(t, 0, lvl.MinEnergy)
	assert.Equal(t, 1, lvl.TotalCrystals)
	assert.Equal(t, 1, lvl.OptimalCrystals)
}

// TestRun_SeedEqualsGoal_NoExpansion: when the goal equals the seed size,
// the traversal never expands beyond the seed itself.
func TestRun_SeedEqualsGoal_NoExpansion(t *testing.T) {
	l := squareLattice(t)
	seed := subset.Of(l, []lattice.Vector{{0, 0}, {1, 0}})
	res, err := search.Run(l, search.WithSeed(seed), search.WithGoal(2))
	require.NoError(t, err)
	require.Len(t, res.Levels, 1)

	lvl := res.Levels[0]
	assert.True(t, lvl.HasAny)
	assert.Equal(t, 2, lvl.Size)
	assert.Equal(t, 1, lvl.TotalCrystals)
	assert.Equal(t, 1, lvl.OptimalCrystals)
}

// TestRun_SquareLattice_Goal4_UniqueMinimumBlock: on a square lattice grown
// to 4 atoms, the minimum energy is 8 (the single 2x2 block), and it is the
// unique optimum under translation-invariant dedup.
func TestRun_SquareLattice_Goal4_UniqueMinimumBlock(t *testing.T) {
	l := squareLattice(t)
	res, err := search.Run(l, search.WithGoal(4), search.WithTranslationInvariant(true))
	require.NoError(t, err)
	require.Len(t, res.Levels, 5)

	lvl4 := res.Levels[4]
	assert.Equal(t, 4, lvl4.Size)
	assert.True(t, lvl4.HasAny)
	assert.Equal(t, 8, lvl4.MinEnergy)
	assert.Equal(t, 1, lvl4.OptimalCrystals)
}

// TestRun_FCC_Goal2_Collect_SinglePair: on the FCC lattice grown to 2 atoms
// with collection enabled, the only optimal crystal is the origin plus one
// neighbor, unique under TI.
func TestRun_FCC_Goal2_Collect_SinglePair(t *testing.T) {
	l := fccLattice(t)
	res, err := search.Run(l,
		search.WithGoal(2),
		search.WithTranslationInvariant(true),
		search.WithCollect(true),
	)
	require.NoError(t, err)
	require.Len(t, res.Levels, 3)

	lvl2 := res.Levels[2]
	assert.True(t, lvl2.HasAny)
	assert.Equal(t, 1, lvl2.OptimalCrystals)
	require.Len(t, lvl2.Crystals, 1)
	assert.Equal(t, 2, lvl2.Crystals[0].Size())
}

// TestRun_Triangular_Goal6_CountsNonDecreasing: on the triangular lattice
// grown to 6 atoms from a single-vertex seed, the minimum energy at n=6 is
// 12, and the total-crystal counts are monotonically non-decreasing in
// size.
func TestRun_Triangular_Goal6_CountsNonDecreasing(t *testing.T) {
	l := triangularLattice(t)
	seed := subset.Of(l, []lattice.Vector{{0, 0}})
	res, err := search.Run(l, search.WithSeed(seed), search.WithGoal(6), search.WithTranslationInvariant(true))
	require.NoError(t, err)
	require.Len(t, res.Levels, 6)

	assert.Equal(t, 12, res.Levels[5].MinEnergy)
	for i := 1; i < len(res.Levels); i++ {
		assert.GreaterOrEqualf(t, res.Levels[i].TotalCrystals, res.Levels[i-1].TotalCrystals,
			"counts must be monotonically non-decreasing at size %d", res.Levels[i].Size)
	}
}

// TestRun_FCC_Goal10_RequireEnergy4_EnergyCurve checks the full minimum-
// energy curve for a unidirectional growth run on the FCC lattice with
// pruning slack 4.
func TestRun_FCC_Goal10_RequireEnergy4_EnergyCurve(t *testing.T) {
	l := fccLattice(t)
	res, err := search.Run(l,
		search.WithGoal(10),
		search.WithTranslationInvariant(true),
		search.WithRequireEnergy(4),
	)
	require.NoError(t, err)
	require.Len(t, res.Levels, 11)

	want := []int{0, 12, 22, 30, 36, 44, 50, 54, 60, 66, 70}
	for i, e := range want {
		assert.Equalf(t, e, res.Levels[i].MinEnergy, "size %d", i)
	}
}

// TestRun_FCC_Goal13_Bidi_RequireEnergy7_FindsLowerMinimum checks that
// allowing shrink moves lets the walker find a lower size-6 minimum (48)
// than the unidirectional curve's 50, while matching it everywhere else.
func TestRun_FCC_Goal13_Bidi_RequireEnergy7_FindsLowerMinimum(t *testing.T) {
	l := fccLattice(t)
	res, err := search.Run(l,
		search.WithGoal(13),
		search.WithBidi(true),
		search.WithTranslationInvariant(true),
		search.WithRequireEnergy(7),
	)
	require.NoError(t, err)
	require.True(t, len(res.Levels) >= 11)

	want := []int{0, 12, 22, 30, 36, 44, 48, 54, 60, 66, 70}
	for i, e := range want {
		assert.Equalf(t, e, res.Levels[i].MinEnergy, "size %d", i)
	}
}

// TestRun_ShrinkDirection_SizesLabeledCorrectly covers goal < seed size:
// the per-level size labels must count down from the seed, not up from
// the lower bound, since the traversal's internal index is a distance
// from the seed rather than an offset from the smaller bound.
func TestRun_ShrinkDirection_SizesLabeledCorrectly(t *testing.T) {
	l := squareLattice(t)
	seed := subset.Of(l, []lattice.Vector{{0, 0}, {1, 0}, {2, 0}})
	res, err := search.Run(l, search.WithSeed(seed), search.WithGoal(1), search.WithTranslationInvariant(true))
	require.NoError(t, err)
	require.Len(t, res.Levels, 3)

	assert.Equal(t, 3, res.Levels[0].Size)
	assert.Equal(t, 2, res.Levels[1].Size)
	assert.Equal(t, 1, res.Levels[2].Size)

	seedLvl := res.Levels[0]
	assert.True(t, seedLvl.HasAny)
	assert.Equal(t, 8, seedLvl.MinEnergy, "a straight 3-in-a-row has 2 internal edges and 12 total endpoints, so 8 dangling edges")

	goalLvl := res.Levels[2]
	assert.True(t, goalLvl.HasAny)
	assert.Equal(t, 4, goalLvl.MinEnergy, "a single vertex on the square lattice has 4 dangling edges")
}

func TestRun_InvalidGoal(t *testing.T) {
	l := squareLattice(t)
	_, err := search.Run(l, search.WithGoal(-1))
	assert.ErrorIs(t, err, search.ErrInvalidGoal)
}
