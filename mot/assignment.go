package mot

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Pair is a single row-to-column assignment with its cost.
// Rows are tracks, columns are detections.
type Pair struct {
	Row  int
	Col  int
	Cost float64
}

// TotalCost sums costs of given pairs
func TotalCost(pairs []Pair) float64 {
	total := 0.0
	for _, pair := range pairs {
		total += pair.Cost
	}
	return total
}

// SolveAssignment finds minimum total cost one-to-one matching between rows and columns
// of a rectangular cost matrix.
//
// Up to min(rows, cols) pairs are returned, sorted by row. Excess rows or columns stay
// unmatched: the matrix is never padded with artificial entries. For rows > cols the solver
// works on the transposed view and maps pairs back.
//
// Implementation is the shortest augmenting path method with row/column potentials
// (Kuhn-Munkres in the Jonker-Volgenant formulation), O(n^2 * m) for n = min(rows, cols)
// and m = max(rows, cols). Rows are inserted in index order and columns are scanned in
// index order with strict comparisons, so among equal-cost matchings the result is
// reproducible for a fixed row and column order.
//
// A row that can only be placed through +Inf (or NaN) entries is left unmatched, so fewer
// than min(rows, cols) pairs come back. Such entries appear when a distance overflows float64.
// No thresholding is performed here, see Gate.
// Nil matrix (including nil *mat.Dense returned by NewCostMatrix) gives empty result.
func SolveAssignment(cost mat.Matrix) []Pair {
	if cost == nil {
		return []Pair{}
	}
	if dense, ok := cost.(*mat.Dense); ok && dense == nil {
		return []Pair{}
	}
	rows, cols := cost.Dims()
	if rows == 0 || cols == 0 {
		return []Pair{}
	}
	transposed := false
	work := cost
	if rows > cols {
		transposed = true
		work = cost.T()
	}
	n, m := work.Dims()
	rowToCol := solveRectangular(n, m, work.At)

	pairs := make([]Pair, 0, n)
	for i, j := range rowToCol {
		if j < 0 {
			continue
		}
		if transposed {
			pairs = append(pairs, Pair{Row: j, Col: i, Cost: cost.At(j, i)})
		} else {
			pairs = append(pairs, Pair{Row: i, Col: j, Cost: cost.At(i, j)})
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		return pairs[a].Row < pairs[b].Row
	})
	return pairs
}

// solveRectangular assigns every one of n rows to a distinct column out of m (n <= m).
// Uses 1-indexed arrays internally, index 0 is the virtual column the augmenting path starts from.
// Returns rowToCol with zero-based column index per row, -1 for a row that no free column is
// reachable from at finite cost.
func solveRectangular(n, m int, at func(i, j int) float64) []int {
	inf := math.Inf(1)

	u := make([]float64, n+1) // Row potentials
	v := make([]float64, m+1) // Column potentials
	p := make([]int, m+1)     // p[j] = row assigned to column j, 0 if free
	way := make([]int, m+1)   // way[j] = previous column on the augmenting path
	minv := make([]float64, m+1)
	used := make([]bool, m+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := 0; j <= m; j++ {
			minv[j] = inf
			used[j] = false
		}
		reachable := true
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := 0
			for j := 1; j <= m; j++ {
				if used[j] {
					continue
				}
				cur := at(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 == 0 {
				// No free column at finite cost: row i stays unmatched, potentials are untouched by this step
				reachable = false
				break
			}
			for j := 0; j <= m; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		if !reachable {
			continue
		}
		// Augment along the path
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	rowToCol := make([]int, n)
	for i := range rowToCol {
		rowToCol[i] = -1
	}
	for j := 1; j <= m; j++ {
		if p[j] > 0 {
			rowToCol[p[j]-1] = j - 1
		}
	}
	return rowToCol
}
