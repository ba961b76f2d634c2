// Package cursor drives a simulation.Simulation between discrete subset
// states, mirroring the toggled subset.Subset alongside the simulation's
// own incremental bookkeeping so callers can read back the exact vertex
// set a given (size, energy) pair corresponds to.
//
// A Cursor is the thing package search pushes and pops as it walks the
// tree of reachable crystals: Step toggles a single atom in or out, and
// Goto jumps directly to an arbitrary target
// subset by replaying the minimal sequence of toggles between the current
// and target states.
package cursor
