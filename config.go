// File: config.go
// Role: the root Config/Option facade, following the teacher's
// prim_kruskal.MSTOptions dispatch-by-config shape: a single struct,
// functional Option values, validated once at construction.
package crystalsim

import (
	"errors"
	"fmt"

	"github.com/latticecraft/crystalsim/lattice"
	"github.com/latticecraft/crystalsim/logx"
)

// Sentinel errors for Config validation, reported at construction time,
// not retryable.
var (
	// ErrNoBasis indicates LatticeBasis was never set.
	ErrNoBasis = errors.New("crystalsim: lattice basis must be non-empty")
	// ErrNegativeGoal indicates Goal was configured negative.
	ErrNegativeGoal = errors.New("crystalsim: goal must be >= 0")
	// ErrDimensionMismatch indicates InitialCrystal contains a vector
	// whose dimension disagrees with the basis.
	ErrDimensionMismatch = errors.New("crystalsim: initial crystal vector dimension disagrees with lattice basis")
	// ErrNegativeVerbosity indicates Verbosity fell outside 0..2.
	ErrNegativeVerbosity = errors.New("crystalsim: verbosity must be in 0..2")
)

// Config is the full configuration surface, covering lattice construction,
// search behavior, and the optional dump destination.
type Config struct {
	// LatticeBasis is the list of integer d-vectors that becomes a
	// uniform neighborhood once closed under negation (lattice.NewNeighborhood).
	LatticeBasis []lattice.Vector
	// Goal is the target population size.
	Goal int
	// InitialCrystal is the seed population (may be empty).
	InitialCrystal []lattice.Vector
	// Bidi allows shrink moves during search.
	Bidi bool
	// TranslationInvariant selects TI-key deduplication.
	TranslationInvariant bool
	// RequireEnergy, if non-nil, is the pruning slack R.
	RequireEnergy *int
	// Collect retains crystal lists for reporting/dumping.
	Collect bool
	// DumpDestination is a directory path, report.StdoutSigil, or ""
	// (absent — no dump is written regardless of Collect).
	DumpDestination string
	// Verbosity is 0..2, gating progress reporting detail.
	Verbosity int
	// Logger receives progress output when Verbosity > 0. Defaults to
	// logx.Noop.
	Logger logx.Logger
}

// Option mutates a Config under construction.
type Option func(*Config)

// DefaultConfig returns the zero-value baseline Config: no basis (must be
// supplied via WithLatticeBasis), goal 0, empty seed, every bool flag
// false, no pruning, no dump, verbosity 0, a no-op Logger.
func DefaultConfig() Config {
	return Config{Logger: logx.Noop}
}

// WithLatticeBasis sets the neighborhood-generating basis.
func WithLatticeBasis(basis []lattice.Vector) Option {
	return func(c *Config) { c.LatticeBasis = basis }
}

// WithGoal sets the target population size.
func WithGoal(goal int) Option {
	return func(c *Config) { c.Goal = goal }
}

// WithInitialCrystal sets the seed population.
func WithInitialCrystal(seed []lattice.Vector) Option {
	return func(c *Config) { c.InitialCrystal = seed }
}

// WithBidi enables or disables shrink moves during search.
func WithBidi(bidi bool) Option {
	return func(c *Config) { c.Bidi = bidi }
}

// WithTranslationInvariant selects TI-key (true) or exact-identity (false)
// deduplication.
func WithTranslationInvariant(ti bool) Option {
	return func(c *Config) { c.TranslationInvariant = ti }
}

// WithRequireEnergy sets the pruning slack R.
func WithRequireEnergy(r int) Option {
	return func(c *Config) { c.RequireEnergy = &r }
}

// WithCollect enables or disables retaining per-shape crystal lists.
func WithCollect(collect bool) Option {
	return func(c *Config) { c.Collect = collect }
}

// WithDumpDestination sets where crystal dumps are written: a directory
// path, report.StdoutSigil, or "" to disable dumping.
func WithDumpDestination(dest string) Option {
	return func(c *Config) { c.DumpDestination = dest }
}

// WithVerbosity sets the progress-logging detail level (0..2).
func WithVerbosity(v int) Option {
	return func(c *Config) { c.Verbosity = v }
}

// WithLogger sets the Logger progress output is sent to.
func WithLogger(l logx.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// validate checks Config against the invalid-configuration family of
// errors. Dimension comes from the basis; every InitialCrystal vector must
// agree with it.
func (c Config) validate() error {
	if len(c.LatticeBasis) == 0 {
		return ErrNoBasis
	}
	if c.Goal < 0 {
		return ErrNegativeGoal
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return ErrNegativeVerbosity
	}
	dim := c.LatticeBasis[0].Dim()
	for _, v := range c.InitialCrystal {
		if v.Dim() != dim {
			return fmt.Errorf("crystalsim: validate: %w", ErrDimensionMismatch)
		}
	}

	return nil
}
