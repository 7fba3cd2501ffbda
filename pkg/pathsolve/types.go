package pathsolve

import "github.com/matzehuels/gridpath/pkg/grid"

// Algorithm names a path-finding strategy.
type Algorithm string

const (
	// AlgorithmDynamic is the exact dynamic programming solver, see Solve.
	AlgorithmDynamic Algorithm = "dynamic"

	// AlgorithmGreedy is the nearest-cheapest-neighbour heuristic, see Greedy.
	AlgorithmGreedy Algorithm = "greedy"
)

// Highlight returns the board marking used for paths found by a.
func (a Algorithm) Highlight() grid.Highlight {
	switch a {
	case AlgorithmDynamic:
		return grid.MarkedDynamic
	case AlgorithmGreedy:
		return grid.MarkedGreedy
	default:
		return grid.Unmarked
	}
}

// Result is the outcome of one solver run.
//
// Path[c] is the row visited in column c. Costs and Predecessors are the
// dynamic programming tables, indexed [row][col]; they are nil for
// algorithms that do not build them. Predecessors[r][0] is always -1.
type Result struct {
	Algorithm    Algorithm `json:"algorithm"`
	MinCost      int       `json:"min_cost"`
	Path         []int     `json:"path"`
	Costs        [][]int   `json:"costs,omitempty"`
	Predecessors [][]int   `json:"predecessors,omitempty"`
}

// Func is the signature shared by all solvers.
type Func func(g grid.Grid) (Result, error)
