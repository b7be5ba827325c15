package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/awerp/backend/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

const guardKeyPrefix = "guard:"

// RedisGenerationGuard is a GenerationGuard backed by Redis SET NX, safe
// across multiple application instances.
type RedisGenerationGuard struct {
	client *redis.Client
}

// NewRedisGenerationGuard creates a new RedisGenerationGuard
func NewRedisGenerationGuard(client *redis.Client) *RedisGenerationGuard {
	return &RedisGenerationGuard{client: client}
}

// Acquire claims the key for the given TTL via SET NX
func (g *RedisGenerationGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, guardKeyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire guard %s: %w", key, err)
	}
	return ok, nil
}

// Release drops the claim on the key
func (g *RedisGenerationGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, guardKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release guard %s: %w", key, err)
	}
	return nil
}

// Ensure RedisGenerationGuard implements GenerationGuard
var _ shared.GenerationGuard = (*RedisGenerationGuard)(nil)
