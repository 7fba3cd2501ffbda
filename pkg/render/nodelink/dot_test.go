package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
	"github.com/matzehuels/gridpath/pkg/render"
)

func solvedBoard(t *testing.T) (*grid.Board, []pathsolve.Result) {
	t.Helper()
	g := grid.Grid{{5, 1, 5}, {1, 5, 1}, {5, 1, 5}}
	res, err := pathsolve.Solve(g)
	if err != nil {
		t.Fatal(err)
	}
	b := grid.NewBoard(g)
	b.ApplyPath(res.Path, grid.MarkedDynamic)
	return b, []pathsolve.Result{res}
}

func TestToDOT(t *testing.T) {
	b, results := solvedBoard(t)
	dot := ToDOT(b, results, Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=LR;",
		`r1c0 [label="1", fillcolor="` + render.ColorDynamic + `"`,
		`r0c0 [label="5", fillcolor="` + render.ColorUnmarked + `"`,
		`r1c0 -> r0c1 [color="` + render.ColorDynamic + `"`,
		`r0c1 -> r1c2 [color="` + render.ColorDynamic + `"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "#cccccc") {
		t.Error("lattice edges should be off by default")
	}
}

func TestToDOTLattice(t *testing.T) {
	b, _ := solvedBoard(t)
	dot := ToDOT(b, nil, Options{Lattice: true})
	// 3x3: columns 1 and 2 each receive 2+3+2 moves.
	if got := strings.Count(dot, "#cccccc"); got != 14 {
		t.Errorf("lattice edges = %d, want 14", got)
	}
}

func TestRenderSVG(t *testing.T) {
	b, results := solvedBoard(t)
	svg, err := RenderSVG(context.Background(), ToDOT(b, results, Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(svg)), "<") || !strings.Contains(string(svg), "<svg") {
		t.Errorf("not an SVG document: %.200s", svg)
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "digraph {"); err == nil {
		t.Error("expected parse error")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="44pt" viewBox="0.00 0.00 62.00 44.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 44.00" width="62" height="44"><g/></svg>`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}
