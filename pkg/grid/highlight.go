package grid

import errs "github.com/matzehuels/gridpath/pkg/errors"

// Highlight is the marking state of a single board cell.
type Highlight uint8

const (
	// Unmarked cells are not on any computed path.
	Unmarked Highlight = iota

	// MarkedDynamic cells lie on the optimal (dynamic programming) path.
	MarkedDynamic

	// MarkedGreedy cells lie on the greedy path.
	MarkedGreedy

	// MarkedBoth cells lie on both paths.
	MarkedBoth
)

var highlightNames = [...]string{
	Unmarked:      "unmarked",
	MarkedDynamic: "dynamic",
	MarkedGreedy:  "greedy",
	MarkedBoth:    "both",
}

// String returns the lowercase name of h.
func (h Highlight) String() string {
	if int(h) < len(highlightNames) {
		return highlightNames[h]
	}
	return "unknown"
}

// MarshalText encodes h by name so JSON boards stay readable.
func (h Highlight) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a highlight name written by MarshalText.
func (h *Highlight) UnmarshalText(text []byte) error {
	for i, name := range highlightNames {
		if name == string(text) {
			*h = Highlight(i)
			return nil
		}
	}
	return errs.New(errs.ErrCodeInvalidFormat, "unknown highlight %q", text)
}

// Overlay returns the state of a cell currently in state h after it is
// marked by. A cell already marked by the other algorithm, or by both,
// becomes MarkedBoth; otherwise it takes by's state. Marking with Unmarked
// leaves h unchanged.
func (h Highlight) Overlay(by Highlight) Highlight {
	switch {
	case by == Unmarked:
		return h
	case by == MarkedBoth, h == MarkedBoth:
		return MarkedBoth
	case h != Unmarked && h != by:
		return MarkedBoth
	default:
		return by
	}
}

// Has reports whether h includes the marking of by.
func (h Highlight) Has(by Highlight) bool {
	if by == Unmarked {
		return h == Unmarked
	}
	return h == by || h == MarkedBoth
}
