package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for neighborhood construction.
var (
	// ErrEmptyBasis indicates NewNeighborhood was called with no offset
	// vectors at all.
	ErrEmptyBasis = errors.New("lattice: basis must contain at least one offset")

	// ErrZeroOffset indicates the basis contained the zero vector, which
	// cannot be a valid neighbor offset (it would make a vertex its own
	// neighbor).
	ErrZeroOffset = errors.New("lattice: basis offset must be non-zero")

	// ErrDuplicateOffset indicates the basis contained the same direction
	// (up to sign) more than once.
	ErrDuplicateOffset = errors.New("lattice: basis contains duplicate or opposite directions")

	// ErrDimensionMismatch indicates the basis vectors do not all share
	// the same dimension.
	ErrDimensionMismatch = errors.New("lattice: basis vectors have inconsistent dimension")
)

// Vector is a d-dimensional integer vector, e.g. a lattice vertex or an
// offset in a Neighborhood's basis. Callers must keep all Vectors passed to
// a given Lattice at the same length (its Dim).
type Vector []int

// Equal reports whether v and w have equal length and equal components.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}

// Add returns a new Vector equal to v + w component-wise. Panics if the
// lengths differ, mirroring a programming-error contract: callers are
// expected to only combine vectors of the configured dimension.
func (v Vector) Add(w Vector) Vector {
	if len(v) != len(w) {
		panic("lattice: Vector.Add: dimension mismatch")
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}

	return out
}

// Negate returns a new Vector equal to -v component-wise.
func (v Vector) Negate() Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = -v[i]
	}

	return out
}

// key produces a comparable string form of v suitable for use as a Go map
// key during basis validation and vector interning. Vectors are small
// (dimension is fixed per lattice, usually <= 4), so this is cheap relative
// to the rest of the pipeline.
func (v Vector) key() string {
	// A simple, allocation-light fixed-width encoding would require a
	// fixed dimension; since dimension varies across Lattices we accept
	// fmt's allocation here, matching the teacher's own preference for
	// fmt-based deterministic IDs over hand-rolled binary encodings
	// (see builder's decimal ID scheme).
	return fmt.Sprint([]int(v))
}

// Dim returns the dimension of v.
func (v Vector) Dim() int { return len(v) }

// Neighborhood is an ordered, negation-closed list of offset vectors.
// Offsets preserves the order in which NewNeighborhood declared the basis,
// followed by the negation of each basis vector: for every offset v
// present, -v is also present.
type Neighborhood struct {
	Offsets []Vector
	Dim     int
}

// NewNeighborhood builds a Neighborhood from basis, a list of offset
// vectors of common dimension. The closure under negation is computed by
// appending -v for every v in basis, in basis order.
//
// Returns ErrEmptyBasis if basis is empty, ErrDimensionMismatch if the
// vectors disagree on dimension, ErrZeroOffset if any basis vector is the
// zero vector, and ErrDuplicateOffset if any two basis vectors are equal or
// are each other's negation (both would otherwise appear twice in the
// closure).
func NewNeighborhood(basis []Vector) (*Neighborhood, error) {
	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}

	dim := basis[0].Dim()
	seen := make(map[string]bool, 2*len(basis))
	for _, v := range basis {
		if v.Dim() != dim {
			return nil, fmt.Errorf("lattice: NewNeighborhood: %w", ErrDimensionMismatch)
		}
		if isZero(v) {
			return nil, fmt.Errorf("lattice: NewNeighborhood: %w", ErrZeroOffset)
		}
		k, nk := v.key(), v.Negate().key()
		if seen[k] || seen[nk] {
			return nil, fmt.Errorf("lattice: NewNeighborhood: %w", ErrDuplicateOffset)
		}
		seen[k] = true
	}

	offsets := make([]Vector, 0, 2*len(basis))
	for _, v := range basis {
		offsets = append(offsets, append(Vector(nil), v...))
	}
	for _, v := range basis {
		offsets = append(offsets, v.Negate())
	}

	return &Neighborhood{Offsets: offsets, Dim: dim}, nil
}

// Degree returns D, the cardinality of the Neighborhood (always even,
// since it is closed under negation).
func (n *Neighborhood) Degree() int { return len(n.Offsets) }

func isZero(v Vector) bool {
	for _, c := range v {
		if c != 0 {
			return false
		}
	}

	return true
}
