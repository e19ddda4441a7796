// Package cache stores fingerprints of written summary documents so
// unchanged pages can be skipped on the next run.
//
// # Overview
//
// The build pipeline fingerprints each state fragment (plots, layout,
// span, state) before writing it. When the fingerprint for a fragment's
// output path is unchanged since the previous run and the file is still
// on disk, the write is skipped. Archived tabs make this effective:
// their spans never change, so their fingerprints are stable across
// runs.
//
// # Backends
//
//   - [FileCache]: per-user cache directory, the default for CLI runs.
//   - [RedisCache]: shared cache for fleets of summary generators.
//   - [NullCache]: disables caching.
//
// # Keys
//
// Keys are derived by hashing structured components, never by string
// concatenation of user input:
//
//	key := cache.FragmentKey("day/locked.html", fingerprint)
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented store with optional expiry.
type Cache interface {
	// Get retrieves the value for key. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// FragmentKey derives the cache key for a fragment document at path with
// the given content fingerprint components.
func FragmentKey(path string, fingerprint ...any) string {
	parts := append([]any{path}, fingerprint...)
	return hashKey("fragment", parts...)
}

// IndexKey derives the cache key for a tab index document.
func IndexKey(path string, fingerprint ...any) string {
	parts := append([]any{path}, fingerprint...)
	return hashKey("index", parts...)
}
