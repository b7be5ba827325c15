package cache

import (
	"context"
	"sync"
	"time"

	"github.com/awerp/backend/internal/domain/shared"
)

// InMemoryGenerationGuard is a single-process GenerationGuard backed by a map
// with expiry. Suitable for development and single-instance deployments; use
// the Redis guard when more than one instance serves traffic.
type InMemoryGenerationGuard struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

// NewInMemoryGenerationGuard creates a new InMemoryGenerationGuard
func NewInMemoryGenerationGuard() *InMemoryGenerationGuard {
	return &InMemoryGenerationGuard{
		entries: make(map[string]time.Time),
	}
}

// Acquire claims the key for the given TTL. Returns false if another caller
// holds an unexpired claim.
func (g *InMemoryGenerationGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if expiry, held := g.entries[key]; held && now.Before(expiry) {
		return false, nil
	}
	g.entries[key] = now.Add(ttl)
	return true, nil
}

// Release drops the claim on the key
func (g *InMemoryGenerationGuard) Release(ctx context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, key)
	return nil
}

// Ensure InMemoryGenerationGuard implements GenerationGuard
var _ shared.GenerationGuard = (*InMemoryGenerationGuard)(nil)
