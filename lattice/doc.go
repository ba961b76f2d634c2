// Package lattice provides a uniform neighborhood over ℤᵈ and an
// interning lattice built from it: a canonicalisation of integer-vector
// vertices into dense small keys, with neighbor adjacency materialised
// lazily and cached per key.
//
// A Neighborhood is an ordered list of d-dimensional offset vectors closed
// under negation; its cardinality D is the lattice's degree. A Lattice
// pairs a Neighborhood with two interning tables (vector->key, key->vector)
// and a per-key cache of the D neighbor keys.
//
// Determinism: neighbor ordering follows the basis declaration then its
// negations (Neighborhood.Offsets is fixed at construction); key
// allocation order depends on call history (Intern is first-come,
// first-served) but does not affect observable semantics outside
// neighbor-ordering ties.
//
// Key 0 is always the origin vector (the zero vector), interned eagerly
// by New.
package lattice
