// Package cache provides the time-boxed store used to memoize read-heavy
// item queries. Values are opaque JSON payloads; every entry carries the
// store's fixed TTL and simply expires. Mutations never invalidate, so
// readers may observe data up to TTL seconds stale.
package cache

import (
	"context"
	"time"
)

const (
	// DefaultTTL bounds how stale a cached read may get.
	DefaultTTL = 5 * time.Minute
	// DefaultSweepInterval is how often the memory backend evicts
	// expired entries in the background.
	DefaultSweepInterval = time.Minute
)

// Store is a key-value cache with a fixed default TTL. Implementations
// must be safe for concurrent use; a miss is (nil, false, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
