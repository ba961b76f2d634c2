// Package simulation implements the additive surface-energy simulation: an
// incremental data structure maintaining, for a current subset S of
// lattice vertices, the total surface energy and two boundary priority
// structures (interior-frontier and exterior-frontier), each updatable in
// O(degree) per single-vertex toggle.
//
// A Simulation owns two bucketq.Container boundaries keyed by
// lattice.Key: Exterior holds vertices not in S with >=1 neighbor in S,
// prioritised by their neighbor count outside S (D minus the count in S);
// Interior holds vertices in S,
// prioritised by their neighbor count also in S. The toggle algorithm
// (Toggle) is the O(degree) incremental update, grounded on the same
// incremental-frontier shape used by the teacher's Prim's-algorithm
// implementation (push affected neighbors, pop the extremal candidate),
// adapted here to maintain two dual bucket structures instead of one
// min-heap.
package simulation
