// Package hungarian - public types, options and sentinel errors.
//
// Design principles (mirrored across the module):
//   - Strict sentinels: user-facing failures are package-level errors with
//     the "hungarian: " prefix, matched via errors.Is.
//   - Options struct + DefaultOptions() constructor; zero value is usable.
//   - No panics on user input; panics are reserved for programmer errors
//     inside the step machine.
package hungarian

import (
	"errors"
	"log/slog"
)

var (
	// ErrEmptyMatrix is returned when the cost matrix has zero rows or a
	// zero-length first row. The solver requires n ≥ 1 and m ≥ 1.
	ErrEmptyMatrix = errors.New("hungarian: cost matrix must be non-empty")

	// ErrRaggedMatrix is returned when the rows of the cost matrix have
	// differing lengths; the input must be a proper rectangle.
	ErrRaggedMatrix = errors.New("hungarian: cost matrix rows must have equal length")

	// ErrNonFiniteCost is returned when any entry is NaN or ±Inf.
	// Validation happens once at entry, before any state-machine work.
	ErrNonFiniteCost = errors.New("hungarian: cost matrix entries must be finite")
)

// Unassigned marks a row that did not receive a column. It only appears in
// Result.Assign when the input has more rows than columns.
const Unassigned = -1

// Location is a (row, column) coordinate in the working matrix. It reports
// the starting point of an augmenting path during the search.
type Location struct {
	Row int
	Col int
}

// InvalidLocation is the distinguished "no location" sentinel.
var InvalidLocation = Location{Row: -1, Col: -1}

// Valid reports whether l denotes a real matrix cell.
// Complexity: O(1).
func (l Location) Valid() bool {
	return l.Row >= 0 && l.Col >= 0
}

// Options configures the assignment solver.
//
// Fields:
//   - Verbose — if true, log every step transition and a final summary.
//   - Logger  — structured log destination; nil falls back to slog.Default().
//
// The algorithm itself is deterministic and needs no tuning knobs: there is
// no epsilon (zero tests are exact by construction) and no iteration limit
// (the machine terminates in strongly polynomial time).
type Options struct {
	Verbose bool
	Logger  *slog.Logger
}

// DefaultOptions returns the quiet production defaults.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Verbose: false,
		Logger:  nil,
	}
}

// Result holds the outcome of a solve.
type Result struct {
	// Assign maps each input row to its assigned column index, or
	// Unassigned when rows > columns and this row lost the competition.
	// len(Assign) always equals the number of input rows.
	Assign []int

	// Cost is the total original-matrix cost over all assigned pairs.
	// It is deterministic: the summation order is fixed (ascending row).
	Cost float64

	// Matched is the number of assigned rows, always min(rows, cols).
	Matched int
}
