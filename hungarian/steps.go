// Package hungarian - the driving step machine.
//
// Steps 1 and 2 (row reduction, greedy initial stars) run exactly once;
// the loop then cycles over the numbered states below until the matching
// is maximum. Only the machine mutates shared solver state; the reduced
// costs, zero index and labeling never change outside a step transition.
package hungarian

import "fmt"

// Machine states. 1 and 2 are the one-shot initial sequence and have no
// state constant; the loop is entered at stepCoverColumns.
const (
	stepCoverColumns  = 3 // cover matched columns, test for completion
	stepPrimeZeros    = 4 // find and prime uncovered zeros
	stepAugmentPath   = 5 // flip stars/primes along the alternating path
	stepAdjustOffsets = 6 // global reduced-cost adjustment
	stepDone          = 7 // terminal: extract the assignment
)

// solver owns all mutable state of one in-flight invocation. Every field
// is created fresh per call, so concurrent solves never share anything.
type solver struct {
	n, m int // working dimensions, n ≤ m

	rc  *reducedCost
	zi  *zeroIndex
	lab *labeling

	// pathStart is the primed zero recorded by the prime step as the
	// origin of the next augmenting path; invalid outside steps 4→5.
	pathStart Location

	log *stepLogger
}

// newSolver builds the per-call state over the working (row-major,
// possibly transposed) matrix. Requires len(base) ≤ len(base[0]).
// Complexity: O(n·m) allocations.
func newSolver(base [][]float64, log *stepLogger) *solver {
	return &solver{
		n:         len(base),
		m:         len(base[0]),
		rc:        newReducedCost(base),
		lab:       newLabeling(len(base), len(base[0])),
		pathStart: InvalidLocation,
		log:       log,
	}
}

// run executes the machine to completion. On return the labeling holds
// exactly n stars, one per row and per column.
func (s *solver) run() {
	// Step 1: row reduction, then seed the zero index from exact zeros.
	s.rc.initRowOffsets()
	s.zi = newZeroIndex(s.rc)
	s.log.step(1, "row reduction complete")

	// Step 2: greedy initial stars.
	s.seedStars()
	s.log.step(2, "initial starring complete")

	state := stepCoverColumns
	for state != stepDone {
		switch state {
		case stepCoverColumns:
			state = s.coverColumns()
		case stepPrimeZeros:
			state = s.primeZeros()
		case stepAugmentPath:
			state = s.augmentPath()
		case stepAdjustOffsets:
			state = s.adjustOffsets()
		default:
			// Unreachable by construction; a foreign state value is an
			// implementation defect, not a data problem.
			panic(fmt.Sprintf("hungarian: internal: invalid machine state %d", state))
		}
		s.log.step(state, "transition")
	}
}

// seedStars performs the one-shot initial starring (step 2): scan rows in
// ascending order and star the first zero whose row and column carry no
// star yet. Covers are untouched (they are still all-false here).
// Complexity: O(n·m).
func (s *solver) seedStars() {
	colUsed := make([]bool, s.m)

	var (
		i int // row under scan
		j int // candidate zero column
	)
	for i = 0; i < s.n; i++ {
		for _, j = range s.zi.zeros[i] {
			if colUsed[j] {
				continue
			}
			s.lab.marks[i][j] = markStar
			colUsed[j] = true

			break // at most one star per row
		}
	}
}

// coverColumns is state 3: cover every column containing a star. When the
// covered count reaches n (= min(n,m), rows never exceed columns here) the
// matching is maximum and the machine halts.
// Complexity: O(n·m).
func (s *solver) coverColumns() int {
	if s.lab.coverStarredColumns() >= s.n {
		return stepDone
	}

	return stepPrimeZeros
}

// primeZeros is state 4: one synchronous pass structure over uncovered
// rows. For each uncovered zero found:
//   - row without a star → prime it, record the augmenting-path origin,
//     hand control to state 5;
//   - row with a star → prime the zero, cover the row, uncover the star's
//     column, and resume from the NEXT row (no restart).
//
// Uncovering a column may expose zeros in rows already passed, so the scan
// wraps; only a full cycle with no find proves that no uncovered zero
// exists anywhere, which routes to state 6.
// Complexity: O(n·m) per cover change.
func (s *solver) primeZeros() int {
	for {
		progressed := false
		for i := 0; i < s.n; i++ {
			if s.lab.rowCover[i] {
				continue
			}
			j, ok := s.zi.firstUncovered(i, s.lab.colCover)
			if !ok {
				continue
			}

			s.lab.marks[i][j] = markPrime
			starCol := s.lab.starInRow(i)
			if starCol < 0 {
				// Unmatched row: this primed zero starts an augmenting path.
				s.pathStart = Location{Row: i, Col: j}

				return stepAugmentPath
			}

			// Matched row: shift the cover and keep scanning from the next row.
			s.lab.rowCover[i] = true
			s.lab.colCover[starCol] = false
			progressed = true
		}
		if !progressed {
			return stepAdjustOffsets
		}
	}
}

// augmentPath is state 5: starting from the recorded primed zero, build
// the alternating path prime → star-in-column → prime-in-row → … until a
// column without a star terminates it. Flipping the path (stars become
// plain, primes become stars) grows the matching by exactly one. Primes
// and covers are then cleared for the next round.
// Complexity: O(n·m) per augmentation.
func (s *solver) augmentPath() int {
	if !s.pathStart.Valid() {
		panic("hungarian: internal: augmentation without a recorded path start")
	}

	path := []Location{s.pathStart}
	for {
		starRow := s.lab.starInCol(path[len(path)-1].Col)
		if starRow < 0 {
			break // the path ends at a star-free column
		}
		path = append(path, Location{Row: starRow, Col: path[len(path)-1].Col})

		primeCol := s.lab.primeInRow(starRow)
		if primeCol < 0 {
			// Every starred row on the path was primed when its cover shifted.
			panic("hungarian: internal: starred row without a primed zero on the path")
		}
		path = append(path, Location{Row: starRow, Col: primeCol})
	}

	// Flip the path: unstar the stars, star the primes.
	for _, loc := range path {
		if s.lab.marks[loc.Row][loc.Col] == markStar {
			s.lab.marks[loc.Row][loc.Col] = markNone
		} else {
			s.lab.marks[loc.Row][loc.Col] = markStar
		}
	}

	s.lab.clearPrimes()
	s.lab.resetCovers()
	s.pathStart = InvalidLocation

	return stepCoverColumns
}

// adjustOffsets is state 6: take the minimum effective value over cells in
// uncovered rows and uncovered columns, apply the offset adjustment, and
// patch the zero index incrementally (argmin cells in, covered/covered
// zeros out). Control returns to state 4 with fresh zeros to prime.
// Complexity: O(n·m).
func (s *solver) adjustOffsets() int {
	d, argmin := s.rc.uncoveredMinimum(s.lab.rowCover, s.lab.colCover)
	s.rc.reduceByGlobalMinimum(d, s.lab.rowCover, s.lab.colCover)
	s.zi.patchAfterReduction(d, argmin, s.lab.rowCover, s.lab.colCover)

	return stepPrimeZeros
}
