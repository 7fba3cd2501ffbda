package pathsolve

import (
	"slices"

	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

var registry = map[Algorithm]Func{
	AlgorithmDynamic: Solve,
	AlgorithmGreedy:  Greedy,
}

// Lookup returns the solver registered under name.
// Unknown names yield an INVALID_ALGORITHM error.
func Lookup(name string) (Func, error) {
	if fn, ok := registry[Algorithm(name)]; ok {
		return fn, nil
	}
	return nil, errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %q (must be one of: %v)", name, Names())
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for a := range registry {
		names = append(names, string(a))
	}
	slices.Sort(names)
	return names
}

// Run solves g with the algorithm registered under name.
func Run(name string, g grid.Grid) (Result, error) {
	fn, err := Lookup(name)
	if err != nil {
		return Result{}, err
	}
	return fn(g)
}
