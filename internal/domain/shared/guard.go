package shared

import (
	"context"
	"time"
)

// GenerationGuard serializes a check-then-act sequence across concurrent
// requests (and, with the Redis implementation, across instances). Acquire
// returns true for exactly one caller per key until the key is released or
// the TTL expires.
//
// The guard narrows the race window only; the database remains the final
// arbiter via its own uniqueness constraints.
type GenerationGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}
