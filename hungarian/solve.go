// Package hungarian - unified entry points for the assignment solver.
//
// This file provides the canonical entry points:
//
//   - Solve: accept a raw [][]float64 cost matrix, validate it, orient it
//     (transpose when rows > columns), run the step machine and assemble
//     the Result in the caller's original orientation.
//   - SolveMatrix: accept a matrix.Matrix, snapshot it into rows and
//     delegate to Solve.
//
// Design principles:
//   - Deterministic: fixed scan orders; no randomness, no time dependence.
//   - Strict sentinels: only errors from types.go (plus forwarded matrix
//     package errors in SolveMatrix); no fmt.Errorf where a sentinel suffices.
//   - Fresh state per call: safe for concurrent use on independent instances.
//   - No partial results: either a complete valid assignment or an error
//     raised before any output is constructed.
package hungarian

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/assign/matrix"
)

// Solve computes a minimum-cost assignment for the given cost matrix.
//
// Contracts:
//   - cost must be a non-empty rectangle of finite float64 values; any
//     other finite values (including negatives) are valid.
//   - The input is treated as read-only: reduction is tracked in offset
//     vectors and the caller's slices are never written.
//
// Result orientation is always the caller's: Assign[i] is the column
// assigned to input row i. When rows > columns the instance is solved on
// the transpose and swapped back, with losing rows set to Unassigned.
//
// Errors: ErrEmptyMatrix, ErrRaggedMatrix, ErrNonFiniteCost.
//
// Complexity: O(r·c·min(r,c)) time, O(r·c) memory.
func Solve(cost [][]float64, opts Options) (Result, error) {
	// Stage 1 - validation, before any state-machine work.
	if err := validateCost(cost); err != nil {
		return Result{}, err
	}

	rows, cols := len(cost), len(cost[0])
	log := newStepLogger(opts)

	// Stage 2 - orientation: the machine requires rows ≤ columns.
	working := cost
	transposed := false
	if rows > cols {
		working = transposeRows(cost)
		transposed = true
		log.event("transposed working matrix", "rows", cols, "cols", rows)
	}

	// Stage 3 - run the machine on fresh per-call state.
	s := newSolver(working, log)
	s.run()

	// Stage 4 - extract stars back into the caller's orientation.
	res := extractResult(s, cost, transposed)
	log.event("assignment complete",
		"rows", rows, "cols", cols, "matched", res.Matched, "cost", res.Cost)

	return res, nil
}

// SolveMatrix snapshots cost into row slices and delegates to Solve.
//
// Contracts: cost must be non-nil; shape and finiteness are then enforced
// by Solve on the snapshot. Read errors from At are forwarded as-is.
//
// Complexity: O(r·c) snapshot + Solve.
func SolveMatrix(cost matrix.Matrix, opts Options) (Result, error) {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return Result{}, err
	}

	var (
		r    = cost.Rows()
		c    = cost.Cols()
		rows = make([][]float64, r)
		i, j int
		err  error
	)
	for i = 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			rows[i][j], err = cost.At(i, j)
			if err != nil {
				return Result{}, err
			}
		}
	}

	return Solve(rows, opts)
}

// validateCost enforces the entry contract: non-empty rectangle, every
// entry finite. NaN and ±Inf are rejected with ErrNonFiniteCost.
// Complexity: O(r·c).
func validateCost(cost [][]float64) error {
	if len(cost) == 0 || len(cost[0]) == 0 {
		return ErrEmptyMatrix
	}
	width := len(cost[0])

	var (
		i, j int     // loop indices
		v    float64 // entry under validation
	)
	for i = 0; i < len(cost); i++ {
		if len(cost[i]) != width {
			return ErrRaggedMatrix
		}
		for j = 0; j < width; j++ {
			v = cost[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFiniteCost
			}
		}
	}

	return nil
}

// transposeRows returns a transposed copy of cost; the original slices
// stay untouched.
// Complexity: O(r·c).
func transposeRows(cost [][]float64) [][]float64 {
	out := make([][]float64, len(cost[0]))

	var i, j int
	for j = range out {
		out[j] = make([]float64, len(cost))
		for i = range cost {
			out[j][i] = cost[i][j]
		}
	}

	return out
}

// extractResult reads the final stars (state 7). With the working matrix
// in caller orientation every row holds exactly one star; on a transposed
// solve each working row is a caller column, so the roles are swapped
// back and rows that lost the competition stay Unassigned.
// Complexity: O(n·m).
func extractResult(s *solver, cost [][]float64, transposed bool) Result {
	res := Result{
		Assign:  make([]int, len(cost)),
		Matched: s.n,
	}

	if !transposed {
		for i := 0; i < s.n; i++ {
			res.Assign[i] = s.lab.starInRow(i)
		}
	} else {
		for i := range res.Assign {
			res.Assign[i] = Unassigned
		}
		// Working row = caller column; its starred column = caller row.
		for workRow := 0; workRow < s.n; workRow++ {
			res.Assign[s.lab.starInRow(workRow)] = workRow
		}
	}

	// Deterministic summation order: ascending caller row.
	for i, j := range res.Assign {
		if j != Unassigned {
			res.Cost += cost[i][j]
		}
	}

	return res
}

// stepLogger is the thin Verbose-gated wrapper over slog used by the step
// machine. A nil receiver-internal logger means logging is disabled, so
// the hot path pays a single pointer test per transition.
type stepLogger struct {
	l *slog.Logger
}

// newStepLogger resolves Options into an active or disabled logger.
// Complexity: O(1).
func newStepLogger(opts Options) *stepLogger {
	if !opts.Verbose {
		return &stepLogger{}
	}
	l := opts.Logger
	if l == nil {
		l = slog.Default()
	}

	return &stepLogger{l: l}
}

// step logs a machine transition at debug level.
func (sl *stepLogger) step(state int, msg string) {
	if sl.l == nil {
		return
	}
	sl.l.Debug(msg, "step", state)
}

// event logs a solver-level event at info level.
func (sl *stepLogger) event(msg string, args ...any) {
	if sl.l == nil {
		return
	}
	sl.l.Info(msg, args...)
}
