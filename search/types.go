// File: types.go
// Role: Config/Option functional-options surface and result types, per
// the explorative search's constructor inputs and per-level arrays.
package search

import (
	"errors"

	"github.com/latticecraft/crystalsim/logx"
	"github.com/latticecraft/crystalsim/subset"
)

// Sentinel errors for search configuration and traversal.
var (
	// ErrInvalidGoal indicates a negative goal size.
	ErrInvalidGoal = errors.New("search: goal must be >= 0")
	// ErrIndexOutOfRange indicates a popped subset's level index fell
	// outside [0, levels) — a programming error, since the traversal only
	// ever pushes children one level away from their parent within
	// bounds.
	ErrIndexOutOfRange = errors.New("search: level index out of range")
)

// Config controls one enumeration run.
type Config struct {
	// Seed is the initial population. The zero value (Seed never set via
	// WithSeed) defaults to the empty subset of the lattice Run is called
	// with.
	Seed subset.Subset
	// Goal is the target population size the traversal works toward.
	Goal int
	// Bidi allows shrink moves (toward the seed) at nodes above the lower
	// bound, not just growth moves toward the goal.
	Bidi bool
	// TranslationInvariant selects TI-key deduplication for the visited
	// set; when false, exact (embedding) identity is used instead.
	TranslationInvariant bool
	// Collect retains one representative Subset per optimal shape at each
	// level.
	Collect bool
	// RequireEnergy, if non-nil, is the pruning slack R: a popped subset
	// is skipped (not counted, not expanded) when its energy exceeds the
	// level's current best by more than R.
	RequireEnergy *int
	// Verbosity is 0..2, gating how much progress logx.Logger receives.
	Verbosity int
	// Logger receives progress output when Verbosity > 0. Defaults to
	// logx.Noop.
	Logger logx.Logger
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithSeed sets the initial population.
func WithSeed(seed subset.Subset) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithGoal sets the target population size.
func WithGoal(goal int) Option {
	return func(c *Config) { c.Goal = goal }
}

// WithBidi enables or disables bidirectional moves during traversal.
func WithBidi(bidi bool) Option {
	return func(c *Config) { c.Bidi = bidi }
}

// WithTranslationInvariant selects TI-key (true) or exact-identity (false)
// deduplication.
func WithTranslationInvariant(ti bool) Option {
	return func(c *Config) { c.TranslationInvariant = ti }
}

// WithCollect enables or disables retaining per-shape Subset values.
func WithCollect(collect bool) Option {
	return func(c *Config) { c.Collect = collect }
}

// WithRequireEnergy sets the pruning slack R.
func WithRequireEnergy(r int) Option {
	return func(c *Config) { c.RequireEnergy = &r }
}

// WithVerbosity sets the progress-logging detail level (0..2).
func WithVerbosity(v int) Option {
	return func(c *Config) { c.Verbosity = v }
}

// WithLogger sets the Logger progress output is sent to.
func WithLogger(l logx.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// LevelResult aggregates every distinct shape found at one population
// size, indexed by distance from the seed.
type LevelResult struct {
	// Size is the atom count this result describes.
	Size int
	// HasAny reports whether any shape of this size was visited at all.
	HasAny bool
	// MinEnergy is the lowest surface energy among visited shapes of this
	// size.
	MinEnergy int
	// TotalCrystals is the number of distinct shapes visited at this size
	// (under the configured TI/identity deduplication).
	TotalCrystals int
	// OptimalCrystals is how many of those achieve MinEnergy.
	OptimalCrystals int
	// Crystals holds every shape achieving MinEnergy, only populated when
	// Config.Collect is true.
	Crystals []subset.Subset
}

// Result is the full output of Run: one LevelResult per size in
// [lower, upper], where lower = min(seedSize, goal) and
// upper = max(seedSize, goal).
type Result struct {
	Levels []LevelResult
}
