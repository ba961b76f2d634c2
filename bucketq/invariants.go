// File: invariants.go
// Role: CheckInvariants, the exported self-check used both by tests (every
// test holds these after every operation) and, at the caller's discretion,
// by debug builds that want to assert consistency between mutations.
package bucketq

import "fmt"

// CheckInvariants recomputes the Container's derived state from scratch and
// compares it against the cached state, returning a descriptive error on
// the first mismatch found. It verifies:
//
//   - size equals the sum of level lengths.
//   - every key's recorded (priority, index) matches the level's actual
//     content at that index.
//   - minPriority, if present, is the smallest non-empty level, and that
//     level is in fact non-empty.
//
// Complexity: O(Len() + Levels()).
func (c *Container) CheckInvariants() error {
	total := 0
	for p, level := range c.levels {
		total += len(level)
		for i, k := range level {
			e, ok := c.entries[k]
			if !ok {
				return fmt.Errorf("bucketq: invariant: key %d present in level %d but missing from entries", k, p)
			}
			if e.priority != p || e.index != i {
				return fmt.Errorf("bucketq: invariant: key %d recorded as (priority=%d,index=%d), found at (priority=%d,index=%d)",
					k, e.priority, e.index, p, i)
			}
		}
	}
	if total != c.size {
		return fmt.Errorf("bucketq: invariant: size=%d but sum of level lengths=%d", c.size, total)
	}

	minP, ok := c.MinPriority()
	if !ok {
		if total != 0 {
			return fmt.Errorf("bucketq: invariant: MinPriority absent but %d keys present", total)
		}

		return nil
	}
	if len(c.levels[minP]) == 0 {
		return fmt.Errorf("bucketq: invariant: MinPriority=%d but that level is empty", minP)
	}
	for p := 0; p < minP; p++ {
		if len(c.levels[p]) != 0 {
			return fmt.Errorf("bucketq: invariant: MinPriority=%d but level %d is non-empty", minP, p)
		}
	}

	return nil
}
