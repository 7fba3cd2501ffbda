package grid

import (
	"encoding/json"
	"math"
	"testing"

	errs "github.com/matzehuels/gridpath/pkg/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		g       Grid
		wantErr bool
	}{
		{"single cell", Grid{{1}}, false},
		{"square", Grid{{1, 2}, {3, 4}}, false},
		{"zero weights", New(3), false},
		{"nil", nil, true},
		{"empty", Grid{}, true},
		{"empty row", Grid{{}}, true},
		{"ragged", Grid{{1, 2}, {3}}, true},
		{"wide", Grid{{1, 2, 3}, {4, 5, 6}}, true},
		{"negative", Grid{{1, -2}, {3, 4}}, true},
		{"overflow", Grid{{math.MaxInt, 0}, {0, 0}}, true},
		{"largest safe weight", Grid{{math.MaxInt / 2, 0}, {0, 0}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errs.Is(err, errs.ErrCodeInvalidInput) {
				t.Errorf("Validate() code = %q, want %q", errs.GetCode(err), errs.ErrCodeInvalidInput)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := Grid{{1, 2}, {3, 4}}
	c := g.Clone()
	c[0][0] = 99

	if g[0][0] != 1 {
		t.Errorf("Clone shares storage: original changed to %d", g[0][0])
	}
	if Grid(nil).Clone() != nil {
		t.Error("Clone of nil grid should be nil")
	}
}

func TestColumn(t *testing.T) {
	g := Grid{{1, 2}, {3, 4}}
	col := g.Column(1)
	if len(col) != 2 || col[0] != 2 || col[1] != 4 {
		t.Errorf("Column(1) = %v, want [2 4]", col)
	}
}

func TestInBounds(t *testing.T) {
	g := New(2)
	tests := []struct {
		row, col int
		want     bool
	}{
		{0, 0, true},
		{1, 1, true},
		{-1, 0, false},
		{0, 2, false},
		{2, 0, false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.row, tt.col); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(6, 9, 42)
	b := Random(6, 9, 42)
	c := Random(6, 9, 43)

	same := true
	differs := false
	for r := range a {
		for col := range a[r] {
			if a[r][col] != b[r][col] {
				same = false
			}
			if a[r][col] != c[r][col] {
				differs = true
			}
			if a[r][col] < 0 || a[r][col] > 9 {
				t.Fatalf("weight %d out of range [0, 9]", a[r][col])
			}
		}
	}
	if !same {
		t.Error("Random should be deterministic for a seed")
	}
	if !differs {
		t.Error("different seeds should produce different grids")
	}
	if err := a.Validate(); err != nil {
		t.Errorf("random grid should validate: %v", err)
	}
}

func TestRandomZeroMaxWeight(t *testing.T) {
	g := Random(3, 0, 1)
	for _, row := range g {
		for _, w := range row {
			if w != 0 {
				t.Fatalf("max weight 0 should give all zeros, got %d", w)
			}
		}
	}
}

func TestHighlightJSONRoundTrip(t *testing.T) {
	board := [][]Highlight{
		{Unmarked, MarkedDynamic},
		{MarkedGreedy, MarkedBoth},
	}

	data, err := json.Marshal(board)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if want := `[["unmarked","dynamic"],["greedy","both"]]`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var got [][]Highlight
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	for r := range board {
		for c := range board[r] {
			if got[r][c] != board[r][c] {
				t.Errorf("cell (%d,%d) = %v, want %v", r, c, got[r][c], board[r][c])
			}
		}
	}
}

func TestHighlightUnmarshalUnknown(t *testing.T) {
	var h Highlight
	err := h.UnmarshalText([]byte("purple"))
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("UnmarshalText(purple) error = %v, want INVALID_FORMAT", err)
	}

	var board [][]Highlight
	if err := json.Unmarshal([]byte(`[["dynamic","unknown"]]`), &board); err == nil {
		t.Error("Unmarshal should reject the \"unknown\" placeholder name")
	}
}
