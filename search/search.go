// File: search.go
// Role: Run, the explicit-stack depth-first traversal: pop a subset,
// record its energy at its level, then push its locally energy-minimising
// children (toward the goal always, back toward the seed only when Bidi
// is set).
package search

import (
	"fmt"

	"github.com/latticecraft/crystalsim/cursor"
	"github.com/latticecraft/crystalsim/lattice"
	"github.com/latticecraft/crystalsim/logx"
	"github.com/latticecraft/crystalsim/subset"
)

func defaultLogger() logx.Logger { return logx.Noop }

// levelState holds the mutable per-level bookkeeping arrays the loop
// updates in place: energies/counts/opt_counts/crystals, indexed by
// distance from the seed rather than derived after the fact.
type levelState struct {
	hasAny    []bool
	energy    []int
	counts    []int
	optCounts []int
	crystals  [][]subset.Subset
}

// Run explores the reachable-subset graph from cfg.Seed (defaulting to
// the empty subset of lat) toward cfg.Goal, aggregating per-size
// statistics between the two.
func Run(lat *lattice.Lattice, opts ...Option) (*Result, error) {
	cfg := Config{Logger: defaultLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Goal < 0 {
		return nil, fmt.Errorf("search: Run: %w", ErrInvalidGoal)
	}
	if cfg.Seed.Lattice() == nil {
		cfg.Seed = subset.Empty(lat)
	}

	seedSize := cfg.Seed.Size()
	lower := min(seedSize, cfg.Goal)
	upper := max(seedSize, cfg.Goal)
	levels := upper - lower + 1
	dir := cursor.NewDirectional(cursor.SignOf(seedSize, cfg.Goal))

	c, err := cursor.NewSeeded(lat, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("search: Run: %w", err)
	}

	lvl := &levelState{
		hasAny:    make([]bool, levels),
		energy:    make([]int, levels),
		counts:    make([]int, levels),
		optCounts: make([]int, levels),
	}
	if cfg.Collect {
		lvl.crystals = make([][]subset.Subset, levels)
	}

	visitedTI := make(map[subset.TIKey]struct{})
	visitedID := make(map[string]struct{})
	markVisited(cfg.Seed, cfg.TranslationInvariant, visitedTI, visitedID)

	stack := []subset.Subset{cfg.Seed}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := absInt(s.Size() - seedSize)
		if d < 0 || d >= levels {
			return nil, fmt.Errorf("search: Run: %w: index %d not in [0,%d)", ErrIndexOutOfRange, d, levels)
		}

		e, err := c.Energy(s)
		if err != nil {
			return nil, fmt.Errorf("search: Run: %w", err)
		}

		if cfg.RequireEnergy != nil && lvl.hasAny[d] && e > lvl.energy[d]+*cfg.RequireEnergy {
			continue
		}

		lvl.counts[d]++
		switch {
		case !lvl.hasAny[d] || e < lvl.energy[d]:
			lvl.hasAny[d] = true
			lvl.energy[d] = e
			lvl.optCounts[d] = 1
			if cfg.Collect {
				lvl.crystals[d] = []subset.Subset{s}
			}
		case e == lvl.energy[d]:
			lvl.optCounts[d]++
			if cfg.Collect {
				lvl.crystals[d] = append(lvl.crystals[d], s)
			}
		}

		if cfg.Verbosity >= 2 {
			cfg.Logger.Printf("search: visited size=%d energy=%d level=%d", s.Size(), e, d)
		}

		if cfg.Bidi && d > 0 {
			children, err := c.NeighborsOf(s, dir.Previous())
			if err != nil {
				return nil, fmt.Errorf("search: Run: %w", err)
			}
			for _, child := range children {
				if markVisited(child, cfg.TranslationInvariant, visitedTI, visitedID) {
					stack = append(stack, child)
				}
			}
		}
		if d < levels-1 {
			children, err := c.NeighborsOf(s, dir.Next())
			if err != nil {
				return nil, fmt.Errorf("search: Run: %w", err)
			}
			for _, child := range children {
				if markVisited(child, cfg.TranslationInvariant, visitedTI, visitedID) {
					stack = append(stack, child)
				}
			}
		}
	}

	sizeStep := 1
	if dir.Sign() == cursor.Shrink {
		sizeStep = -1
	}

	res := &Result{Levels: make([]LevelResult, levels)}
	for i := 0; i < levels; i++ {
		res.Levels[i] = LevelResult{
			Size:            seedSize + sizeStep*i,
			HasAny:          lvl.hasAny[i],
			MinEnergy:       lvl.energy[i],
			TotalCrystals:   lvl.counts[i],
			OptimalCrystals: lvl.optCounts[i],
		}
		if cfg.Collect {
			res.Levels[i].Crystals = lvl.crystals[i]
		}
	}

	if cfg.Verbosity >= 1 {
		cfg.Logger.Printf("search: Run complete, %d levels, seed size %d, goal %d", levels, seedSize, cfg.Goal)
	}

	return res, nil
}

// markVisited admits s into the visited set selected by ti and reports
// whether it was newly inserted (false means s was already present).
func markVisited(s subset.Subset, ti bool, visitedTI map[subset.TIKey]struct{}, visitedID map[string]struct{}) bool {
	if ti {
		k := s.TI()
		if _, ok := visitedTI[k]; ok {
			return false
		}
		visitedTI[k] = struct{}{}

		return true
	}

	id := identity(s)
	if _, ok := visitedID[id]; ok {
		return false
	}
	visitedID[id] = struct{}{}

	return true
}

// identity returns an exact (non-translation-invariant) key distinguishing
// one embedded subset from another.
func identity(s subset.Subset) string {
	keys := s.Keys()
	buf := make([]byte, 0, len(keys)*12)
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = appendUint(buf, uint64(k))
	}

	return string(buf)
}

func appendUint(buf []byte, v uint64) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
