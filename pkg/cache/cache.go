// Package cache stores repository responses between runs.
//
// # Backends
//
//   - [FileCache]: entries under a local directory (the CLI default,
//     ~/.cache/freshdeps)
//   - [RedisCache]: entries in a shared Redis instance, useful when several
//     CI jobs check the same repositories
//   - [NullCache]: stores nothing (--no-cache)
//
// All backends store opaque byte values with an optional TTL and are safe for
// concurrent use.
//
// # Keys
//
// Keys are produced by a [Keyer] so that every backend sees the same layout:
//
//	k := cache.NewDefaultKeyer()
//	key := k.HTTPKey("maven:", "https://repo1.maven.org/maven2/junit/junit/maven-metadata.xml")
//
// A [ScopedKeyer] prefixes every key, separating credentials or projects
// that share one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the value for key. The boolean is false on a miss or when
	// the entry expired; errors are reserved for backend failures.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// HTTPKey returns the key for a cached HTTP response. namespace
	// identifies the repository client (e.g. "maven:").
	HTTPKey(namespace, key string) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HTTPKey returns "http:<namespace>:<key>".
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}
