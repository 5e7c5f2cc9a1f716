package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKey = "tweetsmith:publish_count"

// RedisLimiter keeps the counter in Redis so multiple relay processes share
// one budget. The window is keyed by TTL: the first Consume of a window sets
// the expiry, and the counter disappears with it.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) *RedisLimiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *RedisLimiter) Check(ctx context.Context) (Status, error) {
	count, err := l.rdb.Get(ctx, redisKey).Int()
	if err != nil && err != redis.Nil {
		return Status{}, err
	}

	ttl, err := l.rdb.PTTL(ctx, redisKey).Result()
	if err != nil {
		return Status{}, err
	}
	resetAt := time.Now().Add(l.window)
	if ttl > 0 {
		resetAt = time.Now().Add(ttl)
	}

	st := Status{ResetAt: resetAt}
	if count >= l.limit {
		return st, nil
	}
	st.Allowed = true
	st.Remaining = l.limit - count
	return st, nil
}

func (l *RedisLimiter) Consume(ctx context.Context) error {
	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		// first publish of the window owns the expiry
		return l.rdb.PExpire(ctx, redisKey, l.window).Err()
	}
	return nil
}
