// File: dump.go
// Role: crystal dump files: filename encoding, the textual crystal record
// format, and the skip-on-collision policy.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/latticecraft/crystalsim/logx"
	"github.com/latticecraft/crystalsim/search"
	"github.com/latticecraft/crystalsim/subset"
)

// StdoutSigil, used as the dump destination, routes every dump to
// os.Stdout instead of the filesystem.
const StdoutSigil = "-"

// DumpFlags carries the run parameters the filename and mode encoding
// depend on, decoupled from search.Config so report does not need to
// import the full search configuration surface.
type DumpFlags struct {
	Bidi                 bool
	TranslationInvariant bool
	RequireEnergy        *int
	SeedSize             int
}

// String renders the mode flags in order: b, t, E<R>, i<k>.
func (f DumpFlags) String() string {
	var b strings.Builder
	if f.Bidi {
		b.WriteByte('b')
	}
	if f.TranslationInvariant {
		b.WriteByte('t')
	}
	if f.RequireEnergy != nil {
		fmt.Fprintf(&b, "E%d", *f.RequireEnergy)
	}
	if f.SeedSize > 0 {
		fmt.Fprintf(&b, "i%d", f.SeedSize)
	}

	return b.String()
}

// FileName builds the dump filename for one size: "Crystals in <d>d with
// <n> atoms (mode: <flags>).txt".
func FileName(dim, size int, flags DumpFlags) string {
	return fmt.Sprintf("Crystals in %dd with %d atoms (mode: %s).txt", dim, size, flags)
}

// CrystalLine renders one crystal as its textual record:
// "[(i1,1, ...), (i2,1, ...), ...]", with "[]" for the empty crystal.
func CrystalLine(s subset.Subset) string {
	vectors := s.IterSorted()
	if len(vectors) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j, c := range v {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", c)
		}
		b.WriteByte(')')
	}
	b.WriteByte(']')

	return b.String()
}

// DumpOutcome classifies what happened when report tried to dump one
// size's crystals.
type DumpOutcome int

const (
	// DumpWritten means the file (or stdout stream) was written.
	DumpWritten DumpOutcome = iota
	// DumpSkipped means collected is false or no crystals reached this
	// size; there was nothing to write.
	DumpSkipped
	// DumpSkippedCollision means an existing file already occupied the
	// target path; this is non-fatal and other sizes proceed.
	DumpSkippedCollision
	// DumpError means a filesystem error occurred writing this size's
	// dump other than a pre-existing file.
	DumpError
)

// DumpResult records the outcome for one size, so a driver can report
// partial progress instead of a single all-or-nothing error.
type DumpResult struct {
	Size    int
	Outcome DumpOutcome
	Path    string
	Err     error
}

// WriteDumps writes one file per level that has collected crystals, under
// destination (a directory path, or StdoutSigil to write to os.Stdout
// instead). logger receives progress/collision messages; pass logx.Noop
// for silence.
func WriteDumps(destination string, dim int, flags DumpFlags, levels []search.LevelResult, logger logx.Logger) []DumpResult {
	if logger == nil {
		logger = logx.Noop
	}

	results := make([]DumpResult, 0, len(levels))
	for _, lvl := range levels {
		if !lvl.HasAny || len(lvl.Crystals) == 0 {
			results = append(results, DumpResult{Size: lvl.Size, Outcome: DumpSkipped})
			continue
		}

		name := FileName(dim, lvl.Size, flags)
		if destination == StdoutSigil {
			writeCrystals(os.Stdout, name, lvl.Crystals)
			results = append(results, DumpResult{Size: lvl.Size, Outcome: DumpWritten, Path: "<stdout>"})
			continue
		}

		results = append(results, writeDumpFile(filepath.Join(destination, name), lvl, logger))
	}

	return results
}

func writeDumpFile(path string, lvl search.LevelResult, logger logx.Logger) DumpResult {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			logger.Printf("report: dump collision at %s, skipping size %d", path, lvl.Size)

			return DumpResult{Size: lvl.Size, Outcome: DumpSkippedCollision, Path: path}
		}

		return DumpResult{Size: lvl.Size, Outcome: DumpError, Path: path, Err: fmt.Errorf("report: WriteDumps: %w", err)}
	}

	w := bufio.NewWriter(f)
	writeCrystals(w, "", lvl.Crystals)
	err = w.Flush()
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return DumpResult{Size: lvl.Size, Outcome: DumpError, Path: path, Err: fmt.Errorf("report: WriteDumps: %w", err)}
	}

	return DumpResult{Size: lvl.Size, Outcome: DumpWritten, Path: path}
}

func writeCrystals(w io.Writer, header string, crystals []subset.Subset) {
	if header != "" {
		fmt.Fprintf(w, "# %s\n", header)
	}
	for _, c := range crystals {
		fmt.Fprintln(w, CrystalLine(c))
	}
}
