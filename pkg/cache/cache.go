// Package cache stores rendered maze artifacts (text diagrams, PNG bytes,
// DOT output) keyed by the parameters that produced them. Because carving
// is deterministic for a given algorithm, dimensions, and seed, an artifact
// key fully identifies its content and entries never go stale; TTLs exist
// to bound storage, not to guard correctness.
//
// Backends:
//   - [FileCache]: on-disk cache for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disabled caching, for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all artifact cache backends.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts carries the render parameters that distinguish artifacts
// generated from the same maze.
type ArtifactKeyOpts struct {
	Format      string // "text", "png", "svg", or "dot"
	CellSize    int
	BorderWidth int
	CellWidth   int
	Wall        string
	Background  string
}

// Keyer builds cache keys for generated artifacts.
type Keyer interface {
	// ArtifactKey returns the key for a rendered maze: the carving
	// parameters plus the render options, hashed.
	ArtifactKey(rows, cols int, algorithm string, seed int64, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard [Keyer]: keys are "artifact:" plus a
// SHA-256 hash of all parameters.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey implements [Keyer].
func (k *DefaultKeyer) ArtifactKey(rows, cols int, algorithm string, seed int64, opts ArtifactKeyOpts) string {
	return hashKey("artifact", rows, cols, algorithm, seed, opts)
}
