package hungarian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReducedCost_InitRowOffsets: after initialization every effective
// value is ≥ 0, each row's minimum is exactly 0, and the base matrix is
// untouched.
func TestReducedCost_InitRowOffsets(t *testing.T) {
	base := [][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	}
	rc := newReducedCost(base)
	rc.initRowOffsets()

	assert.Equal(t, []float64{1, 0, 2}, rc.rowOff, "row offsets are the row minima")

	for i := range base {
		rowMin := rc.at(i, 0)
		for j := range base[i] {
			v := rc.at(i, j)
			assert.GreaterOrEqual(t, v, 0.0, "effective(%d,%d) must stay non-negative", i, j)
			if v < rowMin {
				rowMin = v
			}
		}
		assert.Equal(t, 0.0, rowMin, "row %d must contain an exact zero", i)
	}

	assert.Equal(t, [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}, base,
		"reduction must never mutate the base matrix")
}

// TestReducedCost_ReduceByGlobalMinimum checks the four cover quadrants:
// covered row & covered column rises by d, uncovered & uncovered falls by
// d, mixed quadrants are unchanged.
func TestReducedCost_ReduceByGlobalMinimum(t *testing.T) {
	base := [][]float64{
		{5, 6},
		{7, 8},
	}
	rc := newReducedCost(base)

	before := [][]float64{
		{rc.at(0, 0), rc.at(0, 1)},
		{rc.at(1, 0), rc.at(1, 1)},
	}

	rowCover := []bool{true, false} // row 0 covered
	colCover := []bool{true, false} // col 0 covered
	const d = 2.5
	rc.reduceByGlobalMinimum(d, rowCover, colCover)

	assert.Equal(t, before[0][0]+d, rc.at(0, 0), "covered/covered rises")
	assert.Equal(t, before[0][1], rc.at(0, 1), "covered row, uncovered col unchanged")
	assert.Equal(t, before[1][0], rc.at(1, 0), "uncovered row, covered col unchanged")
	assert.Equal(t, before[1][1]-d, rc.at(1, 1), "uncovered/uncovered falls")
}

// TestReducedCost_UncoveredMinimum collects the minimum and all argmin
// cells over the uncovered region only.
func TestReducedCost_UncoveredMinimum(t *testing.T) {
	base := [][]float64{
		{0, 9, 3},
		{8, 3, 7},
		{6, 3, 5},
	}
	rc := newReducedCost(base)

	rowCover := []bool{false, false, false}
	colCover := []bool{true, false, false} // column 0 excluded, hiding the 0

	d, argmin := rc.uncoveredMinimum(rowCover, colCover)
	assert.Equal(t, 3.0, d, "minimum over uncovered cells")
	assert.Equal(t,
		[]Location{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
		argmin, "every attaining cell, in row-major order")
}

// TestZeroIndex_SeedAndLookup: the index is seeded from exact zeros after
// row reduction and serves lowest-column-first lookups.
func TestZeroIndex_SeedAndLookup(t *testing.T) {
	base := [][]float64{
		{2, 1, 1},
		{3, 4, 3},
	}
	rc := newReducedCost(base)
	rc.initRowOffsets()
	zi := newZeroIndex(rc)

	assert.Equal(t, []int{1, 2}, zi.zeros[0], "row 0 zeros at its two minima")
	assert.Equal(t, []int{0, 2}, zi.zeros[1], "row 1 zeros at its two minima")

	noCover := []bool{false, false, false}
	j, ok := zi.firstUncovered(0, noCover)
	require.True(t, ok)
	assert.Equal(t, 1, j, "lowest column index wins the tie-break")

	j, ok = zi.firstUncovered(0, []bool{false, true, false})
	require.True(t, ok)
	assert.Equal(t, 2, j, "covered columns are skipped")

	_, ok = zi.firstUncovered(0, []bool{false, true, true})
	assert.False(t, ok, "no uncovered zero left in the row")
}

// TestZeroIndex_AddRemove keeps the per-row lists sorted and duplicate-free.
func TestZeroIndex_AddRemove(t *testing.T) {
	zi := &zeroIndex{zeros: make([][]int, 1)}

	zi.add(0, 3)
	zi.add(0, 1)
	zi.add(0, 2)
	zi.add(0, 1) // duplicate is a no-op
	assert.Equal(t, []int{1, 2, 3}, zi.zeros[0], "sorted ascending, no duplicates")

	zi.remove(0, 2)
	assert.Equal(t, []int{1, 3}, zi.zeros[0])
	zi.remove(0, 9) // absent column is a no-op
	assert.Equal(t, []int{1, 3}, zi.zeros[0])
}

// TestZeroIndex_PatchAfterReduction: argmin cells enter the index, zeros
// under a covered row AND covered column are evicted, and a zero
// adjustment evicts nothing.
func TestZeroIndex_PatchAfterReduction(t *testing.T) {
	zi := &zeroIndex{zeros: [][]int{{0, 2}, {1}}}
	rowCover := []bool{true, false}
	colCover := []bool{true, false, false}

	zi.patchAfterReduction(1.5, []Location{{Row: 1, Col: 2}}, rowCover, colCover)
	assert.Equal(t, []int{2}, zi.zeros[0], "covered/covered zero (0,0) evicted, (0,2) survives")
	assert.Equal(t, []int{1, 2}, zi.zeros[1], "argmin cell inserted in order")

	// d == 0 destroys nothing: eviction must be skipped entirely.
	zi = &zeroIndex{zeros: [][]int{{0}, nil}}
	zi.patchAfterReduction(0, nil, rowCover, colCover)
	assert.Equal(t, []int{0}, zi.zeros[0], "zero-valued adjustment keeps the index intact")
}

// TestSolver_LiteralTrace runs the machine on the documented rank-one
// matrix and inspects the final star layout directly.
func TestSolver_LiteralTrace(t *testing.T) {
	base := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{3, 6, 9},
	}
	s := newSolver(base, newStepLogger(DefaultOptions()))
	s.run()

	assert.Equal(t, 2, s.lab.starInRow(0), "row 0 stars the dearest column")
	assert.Equal(t, 1, s.lab.starInRow(1))
	assert.Equal(t, 0, s.lab.starInRow(2))

	for i := 0; i < s.n; i++ {
		for j := 0; j < s.m; j++ {
			assert.NotEqual(t, markPrime, s.lab.marks[i][j],
				"primes must be cleared by the end of every augmentation")
		}
	}
	for i := range s.lab.rowCover {
		assert.False(t, s.lab.rowCover[i], "augmentation must leave no dangling row cover")
	}
}

// TestSolver_SeedStars stars at most one zero per row and per column, in
// fixed row-major order.
func TestSolver_SeedStars(t *testing.T) {
	base := [][]float64{
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
	}
	s := newSolver(base, newStepLogger(DefaultOptions()))
	s.rc.initRowOffsets() // minima are already 0; offsets stay 0
	s.zi = newZeroIndex(s.rc)
	s.seedStars()

	assert.Equal(t, 0, s.lab.starInRow(0), "first zero of row 0")
	assert.Equal(t, 2, s.lab.starInRow(1), "column 0 already used, next zero wins")
	assert.Equal(t, 1, s.lab.starInRow(2))
}
