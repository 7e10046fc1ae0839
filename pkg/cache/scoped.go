package cache

// ScopedKeyer wraps a [Keyer] with a prefix, isolating key namespaces when
// several consumers share one backend (for example the HTTP server and the
// CLI pointed at the same redis instance).
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(rows, cols int, algorithm string, seed int64, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(rows, cols, algorithm, seed, opts)
}
