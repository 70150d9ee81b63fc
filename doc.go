// Package assign solves the classical optimal-assignment problem:
// given an n×m matrix of real-valued costs for pairing n "workers"
// with m "jobs", find the pairing of minimum total cost.
//
// 🚀 What is assign?
//
//	A small, deterministic, pure-Go library built around the primal-dual
//	combinatorial method historically known as the Hungarian (Munkres)
//	algorithm:
//		• hungarian/ — the solver core: reduced costs, star/prime labeling,
//		  augmenting paths, and the step machine that drives them
//		• matrix/    — a compact dense float64 cost-matrix container with
//		  strict shape and finiteness validation
//
// ✨ Why choose assign?
//
//   - Strongly polynomial – O(n³) worst case, no randomness, no retries
//   - Rectangular friendly – n×m inputs are handled by internal transposition
//   - Rock-solid guarantees – sentinel errors, exact zero bookkeeping,
//     deterministic tie-breaking, bit-for-bit reproducible total cost
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	        jobs →   J0   J1   J2
//	    worker W0  [  1    2    3 ]
//	    worker W1  [  2    4    6 ]
//	    worker W2  [  3    6    9 ]
//
//	The minimum-cost pairing is W0→J2, W1→J1, W2→J0 with total cost 10.
//
// Dive into hungarian/doc.go for the algorithm walkthrough and the full
// contract of Solve and SolveMatrix.
//
//	go get github.com/katalvlaran/assign
package assign
