// Package hungarian implements the Hungarian (Kuhn–Munkres) algorithm for
// the optimal-assignment problem: given an n×m matrix of finite real costs,
// it computes a minimum-cost perfect matching between rows ("workers") and
// columns ("jobs") — or a minimum-cost maximal matching when the matrix is
// rectangular.
//
// # Algorithm
//
// The solver is the classical primal-dual star/prime state machine driven
// over a lazily reduced cost matrix:
//
//   - Reduced costs — the original matrix is never mutated. Per-row and
//     per-column offsets are tracked so that
//     effective(i,j) = cost(i,j) − rowOffset(i) − colOffset(j),
//     and the search works exclusively with effective values.
//
//   - Zero index — per-row lists of zero-effective columns, patched
//     incrementally as offsets change, so zero lookup is O(1) amortized
//     instead of an O(n·m) rescan per iteration.
//
//   - Star/prime labeling — starred zeros encode the tentative matching,
//     primed zeros the search frontier, with boolean row/column covers.
//
//   - Step machine — steps 1 and 2 (row reduction, greedy initial stars)
//     run once; the loop then alternates over steps 3–6: cover matched
//     columns, prime uncovered zeros, augment along an alternating
//     star/prime path, and adjust the offsets by the global uncovered
//     minimum when no local progress is possible. Step 7 extracts the
//     assignment from the stars.
//
// Complexity: O(n³) time for an n×n matrix, O(n·m) memory. The whole
// computation is one synchronous call; every solver structure is created
// fresh per invocation, so independent goroutines may solve independent
// instances concurrently.
//
// # Rectangular inputs
//
// The machine requires rows ≤ columns. When a caller passes more rows than
// columns, the matrix is transposed internally, solved, and the roles are
// swapped back while assembling the result. With n ≤ m every row receives a
// distinct column; with n > m exactly m rows win a column and the remaining
// rows report Unassigned.
//
// # Determinism
//
// Tie-breaking is fixed: rows are scanned in ascending order and the first
// zero in a row is the one with the lowest column index. Reruns on the same
// matrix therefore return the same assignment, and the total cost of any
// optimal assignment is reproducible bit-for-bit.
//
// # API
//
// Options configures the solver:
//
//	type Options struct {
//	    Verbose bool         // log step transitions and the final summary
//	    Logger  *slog.Logger // destination; nil ⇒ slog.Default()
//	}
//
// Use DefaultOptions() for the quiet production defaults. The entry points:
//
//	func Solve(cost [][]float64, opts Options) (Result, error)
//	func SolveMatrix(cost matrix.Matrix, opts Options) (Result, error)
//
// Result reports Assign (per-row column index or Unassigned), the total
// Cost over assigned pairs, and Matched, the number of assigned rows.
//
// # Errors
//
//	ErrEmptyMatrix    - zero rows or zero columns.
//	ErrRaggedMatrix   - rows of differing lengths.
//	ErrNonFiniteCost  - a NaN or ±Inf entry; validated before any work.
//	matrix.ErrNilMatrix - SolveMatrix received a nil matrix.
//
// All error conditions are reported synchronously, before the state machine
// starts; no partial assignment is ever returned. A state value outside the
// defined set, or an augmentation started without a recorded path origin,
// indicates an implementation defect and panics with a "hungarian: internal"
// message rather than returning an error.
package hungarian
