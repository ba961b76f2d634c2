package subset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticecraft/crystalsim/lattice"
	"github.com/latticecraft/crystalsim/subset"
)

func TestDiff_SymmetricDifference(t *testing.T) {
	l := newSquareLattice(t)
	a := subset.Of(l, []lattice.Vector{{0, 0}, {1, 0}})
	b := subset.Of(l, []lattice.Vector{{1, 0}, {2, 0}})

	entries := subset.Diff(a, b)
	dirOf := map[lattice.Key]subset.Direction{}
	for _, e := range entries {
		dirOf[e.Key] = e.Dir
	}

	k00 := l.Intern(lattice.Vector{0, 0})
	k20 := l.Intern(lattice.Vector{2, 0})
	k10 := l.Intern(lattice.Vector{1, 0})

	assert.Equal(t, subset.Remove, dirOf[k00])
	assert.Equal(t, subset.Add, dirOf[k20])
	_, sharedPresent := dirOf[k10]
	assert.False(t, sharedPresent, "shared vertex must not appear in the diff")
}

func TestDiff_EqualSubsetsEmpty(t *testing.T) {
	l := newSquareLattice(t)
	a := subset.Of(l, []lattice.Vector{{0, 0}})
	b := subset.Of(l, []lattice.Vector{{0, 0}})
	assert.Empty(t, subset.Diff(a, b))
}
