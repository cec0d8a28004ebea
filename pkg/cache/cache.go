// Package cache stores rendered artifacts so identical export requests
// are served without recomputing.
//
// A rendered PDF is fully determined by its inputs (sheet template, layout
// options, return address, branding, recipients), so the cache key is a
// fingerprint of those inputs and entries never go stale. TTLs exist only
// to bound disk and memory use.
//
// Three backends are provided: [FileCache] for the CLI, [RedisCache] for
// the HTTP service running with multiple instances, and [NullCache] to
// disable caching.
package cache

import (
	"context"
	"errors"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ErrCacheMiss is returned by helpers that treat a miss as an error.
var ErrCacheMiss = errors.New("cache miss")
