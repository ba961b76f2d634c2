// Package crystalsim wires package lattice, simulation, cursor, search and
// report into a single convenience entry point, Run, for callers who want
// the whole pipeline (lattice construction -> enumeration -> report/dump)
// behind one call. Callers who need finer control — a custom cursor, a
// hand-built Neighborhood, direct access to search.Result — import the
// subpackages directly; nothing here is re-exported.
//
// The pipeline Run drives: a lattice.Lattice is built from the configured
// basis, a search.Config is derived from Config and run to produce a
// search.Result, and — when a dump destination is configured —
// report.WriteDumps is invoked over the result's collected crystals.
package crystalsim
