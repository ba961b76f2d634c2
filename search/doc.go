// Package search enumerates the connected subsets ("crystals") reachable
// by growing or shrinking a simulation.Simulation from a seed (the empty
// state by default), aggregating per-atom-count statistics: minimum
// surface energy, total distinct shapes (up to lattice translation when
// TranslationInvariant is set, otherwise distinct embeddings), and how
// many of those achieve the minimum.
//
// Traversal is an explicit-stack depth-first walk over a cursor.Cursor
// rather than recursion, since the reachable state graph can be far
// deeper than Go's default goroutine stack comfortably recurses over for
// the larger atom counts this domain targets.
package search
