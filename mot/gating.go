package mot

// GateResult partitions a frame's rows and columns after gating.
// Every row appears either in Matched or in UnmatchedRows, likewise for columns.
type GateResult struct {
	// Pairs with cost not exceeding the threshold, ordered by row
	Matched []Pair
	// Pairs the solver chose but gating split back, ordered by row
	Rejected []Pair
	// Rows without a match, ascending
	UnmatchedRows []int
	// Columns without a match, ascending
	UnmatchedCols []int
}

// Gate applies distance threshold to solver output post-hoc.
// A pair with Cost > maxDistance (or NaN cost) becomes one unmatched row and one unmatched column.
// Rows and columns the solver left out (rectangular case) are reported as unmatched too.
func Gate(pairs []Pair, rows, cols int, maxDistance float64) GateResult {
	result := GateResult{
		Matched:       make([]Pair, 0, len(pairs)),
		UnmatchedRows: make([]int, 0),
		UnmatchedCols: make([]int, 0),
	}
	matchedRows := make([]bool, rows)
	matchedCols := make([]bool, cols)
	for _, pair := range pairs {
		if !(pair.Cost <= maxDistance) {
			result.Rejected = append(result.Rejected, pair)
			continue
		}
		result.Matched = append(result.Matched, pair)
		matchedRows[pair.Row] = true
		matchedCols[pair.Col] = true
	}
	for row, matched := range matchedRows {
		if !matched {
			result.UnmatchedRows = append(result.UnmatchedRows, row)
		}
	}
	for col, matched := range matchedCols {
		if !matched {
			result.UnmatchedCols = append(result.UnmatchedCols, col)
		}
	}
	return result
}
