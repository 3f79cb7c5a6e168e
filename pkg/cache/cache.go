// Package cache caches rendered diagrams by the content hash of their
// input graph and printer options, so re-rendering an unchanged graph with
// unchanged options is a lookup instead of a full pipeline run.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered output keyed by an opaque string key. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool return is false on a cache miss;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value, if present. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache (connections,
	// file handles). Safe to call on a cache that holds none.
	Close() error
}

// Key computes the cache key for a rendered graph: a content hash of the
// graph's source bytes combined with a hash of the printer options that shaped
// the output, since the same graph renders differently under different
// options.
func Key(graphHash string, optsHash string) string {
	return hashKey("render", graphHash, optsHash)
}
