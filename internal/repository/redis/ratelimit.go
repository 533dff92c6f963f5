package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counters live outside the report cache's "report:" namespace so a
// cache flush never resets anyone's window.
const rateLimitPrefix = "ratelimit:ip:"

// RateLimiter is a fixed-window request counter backed by Redis.
// Windows align to wall-clock minutes; burst widens the per-window
// allowance rather than carrying credit across windows.
type RateLimiter struct {
	client *Client
	limit  int64
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *Client, requestsPerMinute, burst int) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  int64(requestsPerMinute + burst),
	}
}

// Allow counts a request against the caller's current window.
// Returns (allowed, remaining, resetTime, error).
func (r *RateLimiter) Allow(ctx context.Context, ip string) (bool, int, time.Time, error) {
	key := rateLimitPrefix + ip
	reset := time.Now().Truncate(time.Minute).Add(time.Minute)

	pipe := r.client.rdb.Pipeline()
	count := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, 0, time.Time{}, fmt.Errorf("rate limit check: %w", err)
	}

	remaining := r.limit - count.Val()
	if remaining < 0 {
		remaining = 0
	}

	return count.Val() <= r.limit, int(remaining), reset, nil
}

// Reset clears the current window for an ip
func (r *RateLimiter) Reset(ctx context.Context, ip string) error {
	return r.client.rdb.Del(ctx, rateLimitPrefix+ip).Err()
}
