// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep callers minimal by delegating shape/nil/finiteness checks here.
//  - Return plain sentinel errors wrapped with a validator tag so call sites
//    can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Finiteness check runs O(r*c) over the full matrix.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	// Otherwise accept.
	return nil
}

// ValidateFinite – Ensures every entry of m is a finite float64.
//
// Implementation: assumes m is not nil (caller must ensure, e.g. via
// ValidateNotNil). Indexing errors from At are surfaced unchanged.
// Returns ErrNaNInf on the first NaN or ±Inf entry, in row-major order,
// so the failure is deterministic for a given matrix.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var (
		i, j int     // loop indices
		v    float64 // current entry
		err  error
	)
	for i = 0; i < m.Rows(); i++ { // rows
		for j = 0; j < m.Cols(); j++ { // cols
			v, err = m.At(i, j) // read entry
			if err != nil {
				return err
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateRect – Ensures a [][]float64 is a proper non-empty rectangle.
//
// Inputs: raw rows as ingested from user code.
// Returns ErrInvalidDimensions for an empty shape and ErrDimensionMismatch
// for ragged rows. Values are NOT inspected here; use FromRows (or
// ValidateFinite on a built matrix) for the numeric policy.
// Complexity: O(r).
func ValidateRect(rows [][]float64) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRect", ErrInvalidDimensions)
	}
	width := len(rows[0])

	var i int
	for i = 1; i < len(rows); i++ { // compare every row against row 0
		if len(rows[i]) != width {
			return validatorErrorf("ValidateRect", ErrDimensionMismatch)
		}
	}

	return nil
}
