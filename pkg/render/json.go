package render

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
)

type jsonOutput struct {
	Size      int                `json:"size"`
	Cells     grid.Grid          `json:"cells"`
	Marks     [][]grid.Highlight `json:"marks"`
	Solutions []jsonSolution     `json:"solutions"`
}

type jsonSolution struct {
	Algorithm pathsolve.Algorithm `json:"algorithm"`
	MinCost   int                 `json:"min_cost"`
	Path      []int               `json:"path"`
	Color     string              `json:"color"`
}

// RenderJSON exports the board weights, highlights (by name) and solutions.
// The DP tables are omitted; they are available from the solver directly.
func RenderJSON(b *grid.Board, results []pathsolve.Result) ([]byte, error) {
	out := jsonOutput{
		Size:      b.Size(),
		Cells:     b.Grid(),
		Marks:     b.Marks(),
		Solutions: make([]jsonSolution, len(results)),
	}
	for i, res := range results {
		out.Solutions[i] = jsonSolution{
			Algorithm: res.Algorithm,
			MinCost:   res.MinCost,
			Path:      res.Path,
			Color:     AlgorithmColor(res.Algorithm),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode board: %w", err)
	}
	return append(data, '\n'), nil
}
