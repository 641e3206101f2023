package cache

import (
	"context"
	"time"
)

// NullCache stands in when responses must not be kept: --no-cache, the
// "none" backend, or a file cache whose directory is unusable. Every Get is
// a miss, so each check goes to the repositories.
type NullCache struct {
	reason string
}

// NewNullCache creates a cache that stores nothing. reason says why caching
// is off and is reported by [NullCache.Reason].
func NewNullCache(reason string) *NullCache {
	return &NullCache{reason: reason}
}

// Reason returns why caching is disabled.
func (c *NullCache) Reason() string {
	if c.reason == "" {
		return "caching disabled"
	}
	return c.reason
}

func (c *NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (c *NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (c *NullCache) Delete(context.Context, string) error                     { return nil }
func (c *NullCache) Close() error                                             { return nil }

var _ Cache = (*NullCache)(nil)
