package cache

import (
	"context"
	"time"
)

// Counter is the contract the rate-limit middleware depends on.
// Implementations: Redis (production), miniredis (tests).
type Counter interface {
	// Increment atomically increments key and returns the new value.
	// A missing key counts from zero.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets the TTL for key. Only the first call per window
	// should arm the expiry; callers guard this via the Increment result.
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// TTL returns the remaining lifetime of key.
	TTL(ctx context.Context, key string) (time.Duration, error)

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
