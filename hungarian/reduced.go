// Package hungarian - lazy reduced-cost view and incremental zero index.
//
// reducedCost tracks per-row/per-column offsets over a read-only base
// matrix instead of mutating it: effective(i,j) = base(i,j) − rowOff[i] −
// colOff[j]. Zeros are produced only by exact subtraction of values drawn
// from the matrix itself, so the initial zero scan may compare against 0.0
// exactly. After that the zeroIndex is authoritative: it is patched on
// every offset change per the step-six bookkeeping and searches never
// re-derive zeros from floating-point equality.
package hungarian

import (
	"math"
	"sort"
)

// reducedCost is the lazy offset view over the working matrix.
// base is borrowed read-only; rowOff and colOff are owned.
type reducedCost struct {
	base   [][]float64 // working matrix rows (possibly a transposed copy)
	rowOff []float64   // per-row additive offset, initially zero
	colOff []float64   // per-column additive offset, initially zero
}

// newReducedCost wraps base with zero offsets.
// Complexity: O(n+m) allocations; base is not copied.
func newReducedCost(base [][]float64) *reducedCost {
	return &reducedCost{
		base:   base,
		rowOff: make([]float64, len(base)),
		colOff: make([]float64, len(base[0])),
	}
}

// at returns the effective (reduced) cost at (i, j), computed on demand in
// the matrix's native precision.
// Complexity: O(1).
func (rc *reducedCost) at(i, j int) float64 {
	return rc.base[i][j] - rc.rowOff[i] - rc.colOff[j]
}

// initRowOffsets sets rowOff[i] to the minimum of row i. Afterwards every
// effective value is ≥ 0 and each row contains at least one exact zero.
// Complexity: O(n·m).
func (rc *reducedCost) initRowOffsets() {
	var (
		i, j int     // loop indices
		best float64 // running row minimum
	)
	for i = range rc.base {
		best = rc.base[i][0]
		for j = 1; j < len(rc.base[i]); j++ {
			if rc.base[i][j] < best {
				best = rc.base[i][j]
			}
		}
		rc.rowOff[i] = best
	}
}

// reduceByGlobalMinimum applies the step-six adjustment: subtract d from
// the offset of every covered row (raising those effective values), then
// add d to the offset of every uncovered column (lowering those). The
// row/column split must stay in exactly this orientation: it preserves
// effective ≥ 0, creates zeros at the uncovered argmin cells, and leaves
// zeros in uncovered rows under covered columns untouched.
// Complexity: O(n+m).
func (rc *reducedCost) reduceByGlobalMinimum(d float64, rowCover, colCover []bool) {
	var i, j int
	for i = range rc.rowOff {
		if rowCover[i] {
			rc.rowOff[i] -= d
		}
	}
	for j = range rc.colOff {
		if !colCover[j] {
			rc.colOff[j] += d
		}
	}
}

// uncoveredMinimum scans cells in uncovered rows and uncovered columns,
// returning the minimum effective value and every cell attaining it.
// The argmin cells become the new zeros after reduceByGlobalMinimum.
// Complexity: O(n·m).
func (rc *reducedCost) uncoveredMinimum(rowCover, colCover []bool) (float64, []Location) {
	var (
		d      = math.Inf(1) // running minimum
		argmin []Location    // cells attaining d
		i, j   int           // loop indices
		v      float64       // current effective value
	)
	for i = range rc.base {
		if rowCover[i] {
			continue
		}
		for j = range rc.base[i] {
			if colCover[j] {
				continue
			}
			v = rc.at(i, j)
			if v < d {
				d = v
				argmin = argmin[:0]
			}
			if v == d {
				argmin = append(argmin, Location{Row: i, Col: j})
			}
		}
	}

	return d, argmin
}

// zeroIndex records, per row, the columns currently at zero effective
// cost, sorted ascending so "first zero" lookups are deterministic.
type zeroIndex struct {
	zeros [][]int // zeros[i] = sorted column indices with effective(i,·)==0
}

// newZeroIndex builds the index from scratch against rc's current offsets.
// Used once, right after the initial row reduction, where exact equality
// against 0.0 is safe by construction.
// Complexity: O(n·m).
func newZeroIndex(rc *reducedCost) *zeroIndex {
	z := &zeroIndex{zeros: make([][]int, len(rc.base))}

	var i, j int
	for i = range rc.base {
		for j = range rc.base[i] {
			if rc.at(i, j) == 0 {
				z.zeros[i] = append(z.zeros[i], j)
			}
		}
	}

	return z
}

// add records column j as a zero of row i, keeping the row sorted.
// Duplicate insertions are ignored.
// Complexity: O(z) for z zeros in the row.
func (z *zeroIndex) add(i, j int) {
	row := z.zeros[i]
	pos := sort.SearchInts(row, j)
	if pos < len(row) && row[pos] == j {
		return // already present
	}
	row = append(row, 0)
	copy(row[pos+1:], row[pos:])
	row[pos] = j
	z.zeros[i] = row
}

// remove deletes column j from row i's zero list, if present.
// Complexity: O(z).
func (z *zeroIndex) remove(i, j int) {
	row := z.zeros[i]
	pos := sort.SearchInts(row, j)
	if pos == len(row) || row[pos] != j {
		return // not recorded
	}
	z.zeros[i] = append(row[:pos], row[pos+1:]...)
}

// firstUncovered returns the lowest-index zero column of row i whose
// column is not covered, or ok=false when the row has none. This fixed
// order is the documented tie-break for "first zero found".
// Complexity: O(z).
func (z *zeroIndex) firstUncovered(i int, colCover []bool) (int, bool) {
	for _, j := range z.zeros[i] {
		if !colCover[j] {
			return j, true
		}
	}

	return 0, false
}

// patchAfterReduction applies the incremental step-six bookkeeping:
// the argmin cells just driven to zero are inserted, and zeros sitting in
// a covered row AND a covered column (their effective value rose by d)
// are evicted. Zeros in exactly one covered dimension are unchanged by
// the adjustment and stay as-is. A d of zero destroys nothing, so
// eviction is skipped to keep the index exact.
// Complexity: O(n·m) worst case, O(changes) typical.
func (z *zeroIndex) patchAfterReduction(d float64, argmin []Location, rowCover, colCover []bool) {
	var (
		i      int   // row iterator
		j      int   // column under inspection
		doomed []int // destroyed zero columns of the current covered row
	)
	if d != 0 {
		for i = range z.zeros {
			if !rowCover[i] {
				continue
			}
			doomed = doomed[:0]
			for _, j = range z.zeros[i] {
				if colCover[j] {
					doomed = append(doomed, j)
				}
			}
			for _, j = range doomed {
				z.remove(i, j)
			}
		}
	}

	for _, loc := range argmin {
		z.add(loc.Row, loc.Col)
	}
}
