// File: run.go
// Role: Run, the single convenience entry point wiring lattice ->
// simulation -> cursor -> search -> report.
package crystalsim

import (
	"fmt"

	"github.com/latticecraft/crystalsim/lattice"
	"github.com/latticecraft/crystalsim/report"
	"github.com/latticecraft/crystalsim/search"
	"github.com/latticecraft/crystalsim/subset"
)

// Report is the full output of Run: the per-size search.Result plus, when
// a dump destination was configured, the per-size outcome of writing it.
type Report struct {
	// Result holds one search.LevelResult per size in [lower, upper].
	Result *search.Result
	// Table is the rendered report table, ready to print.
	Table string
	// Dumps holds one report.DumpResult per level, only populated when
	// Config.DumpDestination is non-empty.
	Dumps []report.DumpResult
}

// Run builds a lattice.Lattice from cfg.LatticeBasis, seeds a search from
// cfg.InitialCrystal, enumerates reachable crystals up to cfg.Goal, and —
// when cfg.DumpDestination is set — writes per-size crystal dumps. It is
// the single-call counterpart to driving package lattice/search/report
// directly.
func Run(opts ...Option) (*Report, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("crystalsim: Run: %w", err)
	}

	neighborhood, err := lattice.NewNeighborhood(cfg.LatticeBasis)
	if err != nil {
		return nil, fmt.Errorf("crystalsim: Run: %w", err)
	}
	lat := lattice.New(neighborhood)

	seed := subset.Of(lat, cfg.InitialCrystal)

	searchOpts := []search.Option{
		search.WithSeed(seed),
		search.WithGoal(cfg.Goal),
		search.WithBidi(cfg.Bidi),
		search.WithTranslationInvariant(cfg.TranslationInvariant),
		search.WithCollect(cfg.Collect),
		search.WithVerbosity(cfg.Verbosity),
		search.WithLogger(cfg.Logger),
	}
	if cfg.RequireEnergy != nil {
		searchOpts = append(searchOpts, search.WithRequireEnergy(*cfg.RequireEnergy))
	}

	result, err := search.Run(lat, searchOpts...)
	if err != nil {
		return nil, fmt.Errorf("crystalsim: Run: %w", err)
	}

	rep := &Report{
		Result: result,
		Table:  report.Table(result.Levels),
	}

	if cfg.DumpDestination != "" {
		flags := report.DumpFlags{
			Bidi:                 cfg.Bidi,
			TranslationInvariant: cfg.TranslationInvariant,
			RequireEnergy:        cfg.RequireEnergy,
			SeedSize:             seed.Size(),
		}
		rep.Dumps = report.WriteDumps(cfg.DumpDestination, lat.Dim(), flags, result.Levels, cfg.Logger)
	}

	return rep, nil
}
