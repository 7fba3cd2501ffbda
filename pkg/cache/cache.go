// Package cache provides key-value caching for solver results and rendered
// artifacts.
//
// Three backends implement [Cache]: [FileCache] for the CLI, [RedisCache] for
// a shared server deployment, and [NullCache] when caching is disabled.
// Keys are produced by a [Keyer] so that callers never build key strings by
// hand; [ScopedKeyer] adds a namespace prefix.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil); an error means the backend failed.
// A zero ttl on Set means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default lifetimes per entry kind. Solutions depend only on the grid and
// the algorithm, so they may live long.
const (
	TTLSolve    = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Keyer builds cache keys.
type Keyer interface {
	// SolveKey identifies one algorithm's solution for a grid.
	SolveKey(gridHash, algorithm string) string

	// ArtifactKey identifies a rendered view of a solved board.
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render parameters that change artifact bytes.
type ArtifactKeyOpts struct {
	Format     string   `json:"format"`
	VizType    string   `json:"viz_type"`
	Algorithms []string `json:"algorithms"`
	CellSize   float64  `json:"cell_size,omitempty"`
	PathLines  bool     `json:"path_lines,omitempty"`
	Lattice    bool     `json:"lattice,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
}

// DefaultKeyer produces keys of the form "kind:sha256(parts)".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolveKey hashes the grid hash together with the algorithm name.
func (DefaultKeyer) SolveKey(gridHash, algorithm string) string {
	return hashKey("solve", gridHash, algorithm)
}

// ArtifactKey hashes the grid hash together with every render option.
func (DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", gridHash, opts)
}

var _ Keyer = DefaultKeyer{}
