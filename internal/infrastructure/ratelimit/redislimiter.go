package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "modcms:ratelimit"

// RedisLimiter keeps one sorted set of request timestamps per key and window.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	seq    atomic.Uint64
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, prefix string) *RedisLimiter {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &RedisLimiter{client: client, prefix: prefix, now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limits Limits) (bool, error) {
	now := l.now()

	for _, w := range limits.windows() {
		if w.limit <= 0 {
			continue
		}

		allowed, err := l.checkWindow(ctx, key, w, now)
		if err != nil {
			return false, err
		}
		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func (l *RedisLimiter) checkWindow(ctx context.Context, key string, w window, now time.Time) (bool, error) {
	redisKey := l.key(key, w.duration)
	windowStart := now.Add(-w.duration).UnixNano()
	member := fmt.Sprintf("%d-%d", now.UnixNano(), l.seq.Add(1))

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	count := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, redisKey, w.duration+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit window %s: %w", w.duration, err)
	}

	return count.Val() < int64(w.limit), nil
}

// Reset drops every window recorded for key.
func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	iter := l.client.Scan(ctx, 0, fmt.Sprintf("%s:%s:*", l.prefix, key), 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}
	return nil
}

func (l *RedisLimiter) key(identifier string, d time.Duration) string {
	return fmt.Sprintf("%s:%s:%s", l.prefix, identifier, d)
}
