package pathsolve_test

import (
	"fmt"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
)

// ExampleSolve finds the path snaking through the cheap cells of a
// checkerboard.
func ExampleSolve() {
	g := grid.Grid{
		{5, 1, 5},
		{1, 5, 1},
		{5, 1, 5},
	}
	res, err := pathsolve.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("min cost: %d\npath: %v\n", res.MinCost, res.Path)
	// Output:
	// min cost: 3
	// path: [1 0 1]
}

// ExampleGreedy shows the greedy walk missing the optimum, and both paths
// overlaid on one board.
func ExampleGreedy() {
	g := grid.Grid{
		{1, 9, 9},
		{5, 9, 9},
		{9, 1, 1},
	}
	gr, _ := pathsolve.Greedy(g)
	opt, _ := pathsolve.Solve(g)

	b := grid.NewBoard(g)
	b.ApplyPath(gr.Path, pathsolve.AlgorithmGreedy.Highlight())
	b.ApplyPath(opt.Path, pathsolve.AlgorithmDynamic.Highlight())

	fmt.Printf("greedy:  %d %v\n", gr.MinCost, gr.Path)
	fmt.Printf("dynamic: %d %v\n", opt.MinCost, opt.Path)
	fmt.Println("shared cells:", b.Count(grid.MarkedBoth))
	// Output:
	// greedy:  19 [0 0 0]
	// dynamic: 7 [1 2 2]
	// shared cells: 0
}

// ExampleMinCost computes only the cost, in linear memory.
func ExampleMinCost() {
	cost, _ := pathsolve.MinCost(grid.Grid{{1, 1}, {1, 1}})
	fmt.Println(cost)
	// Output:
	// 2
}
