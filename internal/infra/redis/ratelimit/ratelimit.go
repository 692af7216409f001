package infra_redis_ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

// Limiter counts hits per key in fixed windows.
type Limiter struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func New(client *redis.Client, prefix string) *Limiter {
	return &Limiter{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

// Allow registers one hit for key and reports whether it fits into limit per window.
// Remaining is never negative.
func (l *Limiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, err error) {
	windowStart := l.now().Truncate(window).Unix()
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, windowStart)

	pipe := l.client.WithContext(ctx).TxPipeline()
	incr := pipe.Incr(redisKey)
	pipe.Expire(redisKey, window)
	if _, err := pipe.Exec(); err != nil {
		return false, 0, fmt.Errorf("rate limit counter: %w", err)
	}

	count := int(incr.Val())
	remaining = limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= limit, remaining, nil
}
