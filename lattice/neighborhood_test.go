package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecraft/crystalsim/lattice"
)

func TestNewNeighborhood_EmptyBasis(t *testing.T) {
	n, err := lattice.NewNeighborhood(nil)
	assert.Nil(t, n)
	assert.ErrorIs(t, err, lattice.ErrEmptyBasis)
}

func TestNewNeighborhood_ZeroOffset(t *testing.T) {
	_, err := lattice.NewNeighborhood([]lattice.Vector{{0, 0}})
	assert.ErrorIs(t, err, lattice.ErrZeroOffset)
}

func TestNewNeighborhood_DuplicateOffset(t *testing.T) {
	_, err := lattice.NewNeighborhood([]lattice.Vector{{1, 0}, {1, 0}})
	assert.ErrorIs(t, err, lattice.ErrDuplicateOffset)

	_, err = lattice.NewNeighborhood([]lattice.Vector{{1, 0}, {-1, 0}})
	assert.ErrorIs(t, err, lattice.ErrDuplicateOffset)
}

func TestNewNeighborhood_DimensionMismatch(t *testing.T) {
	_, err := lattice.NewNeighborhood([]lattice.Vector{{1, 0}, {1, 0, 0}})
	assert.ErrorIs(t, err, lattice.ErrDimensionMismatch)
}

func TestNewNeighborhood_Square_ClosedUnderNegation(t *testing.T) {
	n, err := lattice.NewNeighborhood([]lattice.Vector{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 4, n.Degree())

	for _, v := range n.Offsets {
		found := false
		neg := v.Negate()
		for _, w := range n.Offsets {
			if w.Equal(neg) {
				found = true
				break
			}
		}
		assert.True(t, found, "offset %v has no negation present", v)
	}
}

func TestNewNeighborhood_FCC_DegreeTwelve(t *testing.T) {
	n, err := lattice.NewNeighborhood(fccBasis())
	require.NoError(t, err)
	assert.Equal(t, 12, n.Degree())
}

// fccBasis returns the face-centered-cubic nearest-neighbor basis, degree 12.
func fccBasis() []lattice.Vector {
	return []lattice.Vector{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{-1, 0, 1}, {1, -1, 0}, {0, 1, -1},
	}
}
