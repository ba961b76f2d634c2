// Package bucketq implements a bucketed priority container: a mapping from
// a dense integer key to a small-integer priority in [0, Levels), with O(1)
// insert/update/remove and O(1)-amortised access to the minimum non-empty
// priority level.
//
// Unlike a binary or pairing heap, a bucketq.Container never pays a log-N
// cost: priorities are bounded (the caller fixes Levels at construction,
// typically the degree of a lattice), so every level is a dense slice and
// membership changes are swap-with-last removals. The minimum non-empty
// level is found by scanning a bitmap of non-empty levels with
// bits.TrailingZeros64, starting at level 0 on every call, so the scan
// costs O(Levels/64): a single word when Levels <= 64.
//
// This is the structure underlying simulation's interior/exterior boundary
// bookkeeping (package simulation), where Levels = D+1 and D is the degree
// of the lattice's uniform neighborhood.
//
// Complexity summary:
//
//	Insert/Update/Remove  O(1) amortised
//	PriorityOf/Contains    O(1)
//	MinPriority            O(Levels/64)
//	MinBucket              as MinPriority (returns a read-only view, no copy)
//
// Concurrency: a Container is not safe for concurrent mutation; callers
// must serialise access, matching the single-threaded cooperative model
// described for the whole module.
package bucketq
