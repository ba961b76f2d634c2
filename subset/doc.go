// Package subset implements the immutable crystal value type: an
// unordered set of lattice vertex keys, with copy-on-write Add/Remove, a
// deterministic "first" canonical element, a symmetric-difference
// iterator used by package cursor to compute minimal diffs, and
// translation-invariant canonicalisation for deduplicating subsets that
// differ only by a lattice translation.
//
// Subset values are never mutated after construction; Add and Remove always
// return a new Subset, mirroring core.Graph's Clone/CloneEmpty copy-on-write
// discipline in the teacher module. A Subset's zero value is not useful;
// use Empty() or Of(...).
package subset
