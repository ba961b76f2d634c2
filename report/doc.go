// Package report renders a search.Result as the per-size table and the
// optional crystal dump files: a right-aligned table with thousands
// separators, and one text file per size holding a sorted textual record
// for every crystal achieving that size's minimum energy.
package report
