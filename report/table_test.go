package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/latticecraft/crystalsim/report"
	"github.com/latticecraft/crystalsim/search"
)

func TestTable_RightAlignedWithThousandsSeparators(t *testing.T) {
	levels := []search.LevelResult{
		{Size: 0, HasAny: true, MinEnergy: 0, TotalCrystals: 1, OptimalCrystals: 1},
		{Size: 1, HasAny: true, MinEnergy: 4, TotalCrystals: 1234, OptimalCrystals: 1},
	}
	out := report.Table(levels)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require3Lines(t, lines)
	assert.Contains(t, lines[0], "Atoms")
	assert.Contains(t, lines[2], "1,234")
}

func TestTable_MissingLevelUsesDash(t *testing.T) {
	levels := []search.LevelResult{{Size: 3, HasAny: false}}
	out := report.Table(levels)
	assert.Contains(t, out, "-")
}

func require3Lines(t *testing.T, lines []string) {
	t.Helper()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (header + 2 rows), got %d: %v", len(lines), lines)
	}
}
