// Package hungarian - star/prime labeling and cover bookkeeping.
//
// The labeling encodes the tentative matching (stars), the search frontier
// (primes) and the rows/columns temporarily excluded from the zero search
// (covers). At every point where the invariant is checked, each row and
// each column holds at most one star; primes exist only between the prime
// step and the following augmentation and are cleared afterwards.
package hungarian

// mark is the tri-state label of a cell.
type mark uint8

const (
	markNone  mark = iota // unlabeled cell
	markStar              // zero included in the tentative matching
	markPrime             // candidate extension point for augmentation
)

// labeling is the n×m mark array plus row/column cover vectors.
type labeling struct {
	n, m     int
	marks    [][]mark
	rowCover []bool
	colCover []bool
}

// newLabeling allocates a cleared labeling for an n×m working matrix.
// Complexity: O(n·m).
func newLabeling(n, m int) *labeling {
	l := &labeling{
		n:        n,
		m:        m,
		marks:    make([][]mark, n),
		rowCover: make([]bool, n),
		colCover: make([]bool, m),
	}
	for i := range l.marks {
		l.marks[i] = make([]mark, m)
	}

	return l
}

// starInRow returns the starred column of row i, or -1 when none.
// Complexity: O(m).
func (l *labeling) starInRow(i int) int {
	for j := 0; j < l.m; j++ {
		if l.marks[i][j] == markStar {
			return j
		}
	}

	return -1
}

// starInCol returns the starred row of column j, or -1 when none.
// Complexity: O(n).
func (l *labeling) starInCol(j int) int {
	for i := 0; i < l.n; i++ {
		if l.marks[i][j] == markStar {
			return i
		}
	}

	return -1
}

// primeInRow returns the primed column of row i, or -1 when none.
// Complexity: O(m).
func (l *labeling) primeInRow(i int) int {
	for j := 0; j < l.m; j++ {
		if l.marks[i][j] == markPrime {
			return j
		}
	}

	return -1
}

// coverStarredColumns covers every column containing a star and returns
// the number of covered columns.
// Complexity: O(n·m).
func (l *labeling) coverStarredColumns() int {
	var covered int
	var i, j int
	for j = 0; j < l.m; j++ {
		for i = 0; i < l.n; i++ {
			if l.marks[i][j] == markStar {
				l.colCover[j] = true

				break
			}
		}
		if l.colCover[j] {
			covered++
		}
	}

	return covered
}

// clearPrimes erases every primed mark, leaving stars untouched.
// Complexity: O(n·m).
func (l *labeling) clearPrimes() {
	for i := range l.marks {
		for j := range l.marks[i] {
			if l.marks[i][j] == markPrime {
				l.marks[i][j] = markNone
			}
		}
	}
}

// resetCovers clears both cover vectors.
// Complexity: O(n+m).
func (l *labeling) resetCovers() {
	for i := range l.rowCover {
		l.rowCover[i] = false
	}
	for j := range l.colCover {
		l.colCover[j] = false
	}
}
