// File: container.go
// Role: core mutating/reading operations on Container: insert/update,
// remove, priority queries, min-priority/min-bucket access, increment.
package bucketq

import (
	"fmt"
	"math/bits"
)

// Len returns the total number of keys currently present.
// Complexity: O(1).
func (c *Container) Len() int { return c.size }

// Levels returns the number of priority levels the Container was
// constructed with.
func (c *Container) Levels() int { return c.numLevels }

// Contains reports whether key is currently present at some priority.
// Complexity: O(1).
func (c *Container) Contains(key Key) bool {
	_, ok := c.entries[key]

	return ok
}

// PriorityOf returns the current priority of key and true, or (0, false)
// if key is absent.
// Complexity: O(1).
func (c *Container) PriorityOf(key Key) (int, bool) {
	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// InsertOrUpdate places key at priority. If key is already present at a
// different priority, it is moved; re-inserting at the same priority is a
// no-op. Returns ErrPriorityOutOfRange if priority is not in
// [0, Levels()).
// Complexity: O(1) amortised.
func (c *Container) InsertOrUpdate(key Key, priority int) error {
	if priority < 0 || priority >= c.numLevels {
		return fmt.Errorf("bucketq: InsertOrUpdate(%d, %d): %w", key, priority, ErrPriorityOutOfRange)
	}

	if e, ok := c.entries[key]; ok {
		if e.priority == priority {
			return nil // no-op: same level
		}
		c.removeFromLevel(key, e)
	} else {
		c.size++
	}

	c.appendToLevel(key, priority)

	return nil
}

// Remove deletes key from the Container. Returns ErrUnsetAbsent if key is
// not present — a programming error, not a recoverable condition.
// Complexity: O(1).
func (c *Container) Remove(key Key) error {
	e, ok := c.entries[key]
	if !ok {
		return fmt.Errorf("bucketq: Remove(%d): %w", key, ErrUnsetAbsent)
	}

	c.removeFromLevel(key, e)
	delete(c.entries, key)
	c.size--

	return nil
}

// Increment adjusts key's priority by delta. If key is absent, it is
// inserted at priority `delta` (the caller is expected to have validated
// that this resolves to a sane starting priority). If the resulting
// priority equals unsetOn, the key is removed instead of reinserted — a
// shorthand for boundary maintenance, where a priority reaching the "no
// neighbors on this side" value means the key no longer belongs in this
// boundary.
// Complexity: O(1) amortised.
func (c *Container) Increment(key Key, delta int, unsetOn int) error {
	cur := 0
	if e, ok := c.entries[key]; ok {
		cur = e.priority
	}
	next := cur + delta

	if next == unsetOn {
		return c.Remove(key)
	}

	return c.InsertOrUpdate(key, next)
}

// MinPriority returns the smallest priority with at least one present key,
// and true. Returns (0, false) if the Container is empty.
// Complexity: O(Levels/64) (bitmap scan from level 0 on every call), a
// single word when Levels <= 64.
func (c *Container) MinPriority() (int, bool) {
	for w := 0; w < len(c.nonEmpty); w++ {
		if word := c.nonEmpty[w]; word != 0 {
			return w*64 + bits.TrailingZeros64(word), true
		}
	}

	return 0, false
}

// MinBucket returns a read-only view of the keys at the current minimum
// priority level, or nil if the Container is empty. The returned slice
// aliases internal storage and must not be mutated or retained past the
// next mutating call.
// Complexity: that of MinPriority.
func (c *Container) MinBucket() []Key {
	p, ok := c.MinPriority()
	if !ok {
		return nil
	}

	return c.levels[p]
}

// Bucket returns a read-only view of the keys at priority p: nil if p is
// out of range, an empty (possibly nil) slice if that level is empty. Same
// aliasing caveat as MinBucket.
func (c *Container) Bucket(p int) []Key {
	if p < 0 || p >= c.numLevels {
		return nil
	}

	return c.levels[p]
}

// Keys invokes fn for every present key, in unspecified order. Iteration is
// safe only when fn does not mutate the Container.
func (c *Container) Keys(fn func(key Key, priority int)) {
	for k, e := range c.entries {
		fn(k, e.priority)
	}
}

// appendToLevel inserts key at the end of levels[priority], recording its
// entry and setting the level's non-empty bit.
func (c *Container) appendToLevel(key Key, priority int) {
	idx := len(c.levels[priority])
	c.levels[priority] = append(c.levels[priority], key)
	c.entries[key] = entry{priority: priority, index: idx}
	c.setBit(priority)
}

// removeFromLevel removes key (whose bookkeeping is e) from its level via
// swap-with-last, keeping the level dense and the moved key's index
// current. Clears the non-empty bit if the level becomes empty.
func (c *Container) removeFromLevel(key Key, e entry) {
	level := c.levels[e.priority]
	last := len(level) - 1
	moved := level[last]
	level[e.index] = moved
	if moved != key {
		c.entries[moved] = entry{priority: e.priority, index: e.index}
	}
	c.levels[e.priority] = level[:last]

	if len(c.levels[e.priority]) == 0 {
		c.clearBit(e.priority)
	}
}

func (c *Container) setBit(p int) {
	c.nonEmpty[p/64] |= 1 << uint(p%64)
}

func (c *Container) clearBit(p int) {
	c.nonEmpty[p/64] &^= 1 << uint(p%64)
}
