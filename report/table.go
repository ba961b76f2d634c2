// File: table.go
// Role: the per-size report table (Atoms | Minimal Energy | Total
// Crystals | Optimal Crystals), right-aligned with thousands separators.
package report

import (
	"strconv"
	"strings"

	"github.com/latticecraft/crystalsim/search"
)

var tableColumns = []string{"Atoms", "Minimal Energy", "Total Crystals", "Optimal Crystals"}

// Table renders levels as the fixed-column report table: one
// row per level, right-aligned integer columns with thousands separators.
// A level with HasAny false prints "-" in its numeric columns (no state of
// that size was ever visited).
func Table(levels []search.LevelResult) string {
	rows := make([][4]string, len(levels))
	for i, lvl := range levels {
		rows[i][0] = groupThousands(lvl.Size)
		if lvl.HasAny {
			rows[i][1] = groupThousands(lvl.MinEnergy)
			rows[i][2] = groupThousands(lvl.TotalCrystals)
			rows[i][3] = groupThousands(lvl.OptimalCrystals)
		} else {
			rows[i][1], rows[i][2], rows[i][3] = "-", "-", "-"
		}
	}

	widths := [4]int{}
	for i, h := range tableColumns {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow(&b, tableColumns[:], widths)
	for _, row := range rows {
		writeRow(&b, row[:], widths)
	}

	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths [4]int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
		b.WriteString(cell)
	}
	b.WriteByte('\n')
}

// groupThousands formats n with a comma every three digits from the right,
// e.g. 1234567 -> "1,234,567".
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}

	out := b.String()
	if neg {
		out = "-" + out
	}

	return out
}
