// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 cost-matrix container used by
// the assignment solver, together with a small set of centralized
// validators and package-level sentinel errors.
//
// The package is deliberately minimal:
//
//   - Dense — a row-major r×c matrix backed by a flat slice, with
//     bounds-checked At/Set, deep Clone, and a Transpose constructor.
//   - FromRows — strict ingestion of a [][]float64 (rejects ragged rows
//     and non-finite entries at the boundary, before any computation).
//   - Validators — ValidateNotNil / ValidateFinite / ValidateRect as the
//     single source of truth for shape and numeric-policy checks.
//
// Numeric policy: every stored value must be a finite float64. NaN and
// ±Inf are rejected at ingestion with ErrNaNInf; algorithms downstream
// may therefore rely on exact floating-point comparisons against values
// derived from the matrix itself.
//
// All error conditions are reported through sentinel errors declared in
// errors.go and matched with errors.Is; no function in this package
// panics on user input.
package matrix
