package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridpath/pkg/cache"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/observability"
	"github.com/matzehuels/gridpath/pkg/pathsolve"
)

// Runner encapsulates pipeline execution with caching.
// The CLI, the TUI and the API all use it so that caching and reporting
// behave the same everywhere.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different grids.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete solve → mark → render pipeline with caching.
//
// Paths are overlaid on the board in the order of opts.Algorithms, and each
// total cost is sent to opts.Reporter when one is set. The grid must pass
// [grid.Grid.Validate]; no stage runs otherwise.
func (r *Runner) Execute(ctx context.Context, g grid.Grid, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	hash, err := GridHash(g)
	if err != nil {
		return nil, err
	}
	result := &Result{
		GridHash:  hash,
		Artifacts: make(map[string][]byte),
	}
	result.Stats.Size = g.Size()

	// Stage 1: Solve
	solveStart := time.Now()
	for _, name := range opts.Algorithms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, hit, err := r.solve(ctx, g, hash, name, opts.Refresh)
		if err != nil {
			return nil, fmt.Errorf("solve %s: %w", name, err)
		}
		if hit {
			result.CacheInfo.SolveHits++
		}
		result.Solutions = append(result.Solutions, res)
	}
	result.Stats.SolveTime = time.Since(solveStart)

	// Stage 2: Mark
	result.Board = Mark(g, result.Solutions, opts.Reporter)

	r.Logger.Info("solved grid",
		"size", g.Size(),
		"algorithms", opts.Algorithms,
		"cached", result.CacheInfo.SolveHits,
		"duration", result.Stats.SolveTime)

	if len(opts.Formats) == 0 {
		return result, nil
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, result.Board, hash, result.Solutions, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Mark overlays every result's path on a fresh board over g, in order, and
// reports each total cost to rep (which may be nil).
func Mark(g grid.Grid, results []pathsolve.Result, rep grid.Reporter) *grid.Board {
	b := grid.NewBoard(g)
	for _, res := range results {
		b.ApplyPath(res.Path, res.Algorithm.Highlight())
		if rep != nil {
			rep.ReportTotalCost(string(res.Algorithm), res.MinCost)
		}
	}
	return b
}

// SolveWithCacheInfo runs one algorithm with caching and returns cache hit info.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, g grid.Grid, algorithm string) (pathsolve.Result, bool, error) {
	if err := ValidateAlgorithm(algorithm); err != nil {
		return pathsolve.Result{}, false, err
	}
	if err := g.Validate(); err != nil {
		return pathsolve.Result{}, false, err
	}
	hash, err := GridHash(g)
	if err != nil {
		return pathsolve.Result{}, false, err
	}
	return r.solve(ctx, g, hash, algorithm, false)
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards the cache hit info.
func (r *Runner) Solve(ctx context.Context, g grid.Grid, algorithm string) (pathsolve.Result, error) {
	res, _, err := r.SolveWithCacheInfo(ctx, g, algorithm)
	return res, err
}

func (r *Runner) solve(ctx context.Context, g grid.Grid, hash, algorithm string, refresh bool) (pathsolve.Result, bool, error) {
	cacheKey := r.Keyer.SolveKey(hash, algorithm)

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached pathsolve.Result
			if err := json.Unmarshal(data, &cached); err == nil && len(cached.Path) == g.Size() {
				observability.Cache().OnCacheHit(ctx, "solve")
				return cached, true, nil
			}
			// Undecodable entries fall through and are overwritten.
		} else if err != nil {
			r.Logger.Warn("cache read failed", "key", cacheKey, "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "solve")
	}

	observability.Solve().OnSolveStart(ctx, algorithm, g.Size())
	start := time.Now()
	res, err := pathsolve.Run(algorithm, g)
	observability.Solve().OnSolveComplete(ctx, algorithm, g.Size(), res.MinCost, time.Since(start), err)
	if err != nil {
		return pathsolve.Result{}, false, err
	}

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLSolve); err != nil {
			r.Logger.Warn("cache write failed", "key", cacheKey, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "solve", len(data))
		}
	}
	return res, false, nil
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// gridHash keys the cache; it must be the [GridHash] of the board's grid.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, b *grid.Board, gridHash string, results []pathsolve.Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(gridHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit && !opts.Refresh {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
			continue
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	sub := opts
	sub.Formats = missing
	observability.Solve().OnRenderStart(ctx, missing)
	start := time.Now()
	rendered, err := Render(ctx, b, results, sub)
	observability.Solve().OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(gridHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
		artifacts[format] = data
	}
	return artifacts, false, nil
}

// GridHash returns the content hash used in cache keys.
func GridHash(g grid.Grid) (string, error) {
	return cache.HashJSON(g)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
