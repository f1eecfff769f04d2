package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"

	"taskboard/internal/core/ports"
)

// Limiter counts hits per key in fixed windows. The memory store keeps
// counters in process; the redis store shares them between replicas.
type Limiter struct {
	limiter *limiter.Limiter
}

var _ ports.RateLimiter = (*Limiter)(nil)

func NewMemoryLimiter(max int, period time.Duration) *Limiter {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          "ratelimit",
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	})
	return newLimiter(store, max, period)
}

// NewRedisLimiter loads the store's scripts up front, so it fails when the
// server is unreachable.
func NewRedisLimiter(client redis.UniversalClient, max int, period time.Duration, prefix string) (*Limiter, error) {
	store, err := redisstore.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: prefix})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit store: %w", err)
	}
	return newLimiter(store, max, period), nil
}

func newLimiter(store limiter.Store, max int, period time.Duration) *Limiter {
	return &Limiter{
		limiter: limiter.New(store, limiter.Rate{Period: period, Limit: int64(max)}),
	}
}

func (l *Limiter) Allow(ctx context.Context, key string) (ports.RateLimitResult, error) {
	res, err := l.limiter.Get(ctx, key)
	if err != nil {
		return ports.RateLimitResult{}, fmt.Errorf("rate limit %q: %w", key, err)
	}

	return ports.RateLimitResult{
		Allowed:   !res.Reached,
		Limit:     int(res.Limit),
		Remaining: int(res.Remaining),
		ResetAt:   time.Unix(res.Reset, 0),
	}, nil
}
