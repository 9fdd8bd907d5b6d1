// Package cache provides caching for layout pipeline results.
//
// The pipeline caches at two levels:
//   - Layout results keyed by the mind map content and layout options
//   - Rendered artifacts (SVG, PNG, DOT) keyed by the positioned layout
//
// Backends:
//   - FileCache: file-based cache for CLI usage
//   - RedisCache: Redis-backed cache for multi-instance server deployments
//   - MemoryCache: in-process cache for tests and single-instance servers
//   - NullCache: disables caching entirely
package cache

import (
	"context"
	"time"
)

// TTLs for the different cache levels. Layout results are cheap to recompute
// so they expire quickly; rendered artifacts are the expensive end of the
// pipeline and are kept longer.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
// Backend failures surface as errors; callers treat errors as misses so a
// degraded cache never takes down the pipeline.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
