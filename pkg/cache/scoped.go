package cache

// ScopedKeyer wraps a Keyer with a prefix so that several users of one
// backend keep separate namespaces. The HTTP server uses "api:" so its
// entries never collide with CLI runs sharing the same redis.
//
//	apiKeyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolveKey generates a prefixed key for a cached solution.
func (k *ScopedKeyer) SolveKey(gridHash, algorithm string) string {
	return k.prefix + k.inner.SolveKey(gridHash, algorithm)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(gridHash, opts)
}
