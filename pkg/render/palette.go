package render

import (
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
)

// Colours shared by the board and node-link views.
const (
	ColorUnmarked = "#ffffff"
	ColorDynamic  = "#e5484d"
	ColorGreedy   = "#3e63dd"
	ColorBoth     = "#d6409f"
	ColorBorder   = "#333333"
	ColorText     = "#1a1a1a"
)

// Fill returns the cell colour for highlight h.
func Fill(h grid.Highlight) string {
	switch h {
	case grid.MarkedDynamic:
		return ColorDynamic
	case grid.MarkedGreedy:
		return ColorGreedy
	case grid.MarkedBoth:
		return ColorBoth
	default:
		return ColorUnmarked
	}
}

// TextColor returns a weight label colour readable on Fill(h).
func TextColor(h grid.Highlight) string {
	if h == grid.Unmarked {
		return ColorText
	}
	return "#ffffff"
}

// AlgorithmColor returns the colour used for paths of algorithm a.
func AlgorithmColor(a pathsolve.Algorithm) string {
	return Fill(a.Highlight())
}
