package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecraft/crystalsim/lattice"
)

func squareLattice(t *testing.T) *lattice.Lattice {
	t.Helper()
	n, err := lattice.NewNeighborhood([]lattice.Vector{{1, 0}, {0, 1}})
	require.NoError(t, err)

	return lattice.New(n)
}

func TestNew_OriginIsKeyZero(t *testing.T) {
	l := squareLattice(t)
	v, err := l.VectorOf(0)
	require.NoError(t, err)
	assert.True(t, v.Equal(lattice.Vector{0, 0}))
}

func TestIntern_InjectiveAndRoundTrips(t *testing.T) {
	l := squareLattice(t)
	k1 := l.Intern(lattice.Vector{3, 4})
	k2 := l.Intern(lattice.Vector{3, 4})
	assert.Equal(t, k1, k2, "re-interning the same vector must return the same key")

	k3 := l.Intern(lattice.Vector{4, 3})
	assert.NotEqual(t, k1, k3)

	v, err := l.VectorOf(k1)
	require.NoError(t, err)
	assert.True(t, v.Equal(lattice.Vector{3, 4}))
}

func TestVectorOf_Unallocated(t *testing.T) {
	l := squareLattice(t)
	_, err := l.VectorOf(999)
	assert.ErrorIs(t, err, lattice.ErrUnallocatedKey)
}

func TestNeighbors_LengthAndOffsetAgreement(t *testing.T) {
	l := squareLattice(t)
	origin := lattice.Key(0)
	nbs, err := l.Neighbors(origin)
	require.NoError(t, err)
	assert.Len(t, nbs, l.Degree())

	for i, nk := range nbs {
		v, err := l.VectorOf(nk)
		require.NoError(t, err)
		want := lattice.Vector{0, 0}.Add(l.Neighborhood().Offsets[i])
		assert.True(t, v.Equal(want), "neighbor %d: got %v want %v", i, v, want)
	}
}

func TestNeighbors_Cached(t *testing.T) {
	l := squareLattice(t)
	before := l.NumInterned()
	first, err := l.Neighbors(0)
	require.NoError(t, err)
	afterFirst := l.NumInterned()
	assert.Greater(t, afterFirst, before)

	second, err := l.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, afterFirst, l.NumInterned(), "second call must not intern again")
}

func TestDegree_FCC(t *testing.T) {
	n, err := lattice.NewNeighborhood(fccBasis())
	require.NoError(t, err)
	l := lattice.New(n)
	assert.Equal(t, 12, l.Degree())
}
