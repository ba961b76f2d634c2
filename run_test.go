package crystalsim_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticecraft/crystalsim"
	"github.com/latticecraft/crystalsim/lattice"
)

func TestRun_ValidatesConfig(t *testing.T) {
	_, err := crystalsim.Run(crystalsim.WithGoal(4))
	require.ErrorIs(t, err, crystalsim.ErrNoBasis)

	_, err = crystalsim.Run(
		crystalsim.WithLatticeBasis([]lattice.Vector{{1, 0}}),
		crystalsim.WithGoal(-1),
	)
	require.ErrorIs(t, err, crystalsim.ErrNegativeGoal)

	_, err = crystalsim.Run(
		crystalsim.WithLatticeBasis([]lattice.Vector{{1, 0}}),
		crystalsim.WithGoal(1),
		crystalsim.WithVerbosity(3),
	)
	require.ErrorIs(t, err, crystalsim.ErrNegativeVerbosity)

	_, err = crystalsim.Run(
		crystalsim.WithLatticeBasis([]lattice.Vector{{1, 0}}),
		crystalsim.WithGoal(1),
		crystalsim.WithInitialCrystal([]lattice.Vector{{0, 0, 0}}),
	)
	require.ErrorIs(t, err, crystalsim.ErrDimensionMismatch)
}

func TestRun_SquareLatticeReportAndTable(t *testing.T) {
	rep, err := crystalsim.Run(
		crystalsim.WithLatticeBasis([]lattice.Vector{{1, 0}, {0, 1}}),
		crystalsim.WithGoal(4),
		crystalsim.WithTranslationInvariant(true),
	)
	require.NoError(t, err)
	require.Len(t, rep.Result.Levels, 5)

	last := rep.Result.Levels[4]
	assert.Equal(t, 4, last.Size)
	assert.Equal(t, 8, last.MinEnergy)
	assert.Equal(t, 1, last.OptimalCrystals)
	assert.Contains(t, rep.Table, "Atoms")
	assert.Nil(t, rep.Dumps)
}

func TestRun_DumpDestinationWritesFiles(t *testing.T) {
	dir := t.TempDir()

	rep, err := crystalsim.Run(
		crystalsim.WithLatticeBasis([]lattice.Vector{{1, 0}, {0, 1}}),
		crystalsim.WithGoal(4),
		crystalsim.WithTranslationInvariant(true),
		crystalsim.WithCollect(true),
		crystalsim.WithDumpDestination(dir),
	)
	require.NoError(t, err)
	require.NotEmpty(t, rep.Dumps)

	var wrote bool
	for _, d := range rep.Dumps {
		if d.Size == 4 {
			require.NoError(t, d.Err)
			assert.FileExists(t, filepath.Join(dir, filepath.Base(d.Path)))
			wrote = true
		}
	}
	assert.True(t, wrote, "expected a dump written for size 4")
}

func TestRun_BidiMatchesExpandedEnergies(t *testing.T) {
	r := 0
	rep, err := crystalsim.Run(
		crystalsim.WithLatticeBasis([]lattice.Vector{
			{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
			{-1, 0, 1}, {1, -1, 0}, {0, 1, -1},
		}),
		crystalsim.WithGoal(10),
		crystalsim.WithBidi(true),
		crystalsim.WithTranslationInvariant(true),
		crystalsim.WithRequireEnergy(r),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Result.Levels[0].MinEnergy)
	assert.Equal(t, 12, rep.Result.Levels[1].MinEnergy)
}
