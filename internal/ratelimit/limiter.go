// Package ratelimit counts attempts per key over a sliding window kept in redis.
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/cake-storefront/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const CheckoutKeyPrefix = "checkout_attempts"

type Limiter interface {
	// Allow records one attempt and reports whether it fits in the window.
	// When it does not, retryAfter is how long until the oldest attempt expires.
	Allow(ctx context.Context, key string) (allowed bool, remaining int64, retryAfter time.Duration, err error)
}

type redisLimiter struct {
	client redis.UniversalClient
	cfg    config.RateLimit
	now    func() time.Time
	member func() string
}

func NewRedisLimiter(client redis.UniversalClient, cfg config.RateLimit) Limiter {
	return &redisLimiter{
		client: client,
		cfg:    cfg,
		now:    time.Now,
		member: uuid.NewString,
	}
}

// Each attempt is a sorted-set member scored by its unix time in milliseconds.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, int64, time.Duration, error) {
	now := l.now().UnixMilli()
	windowStart := now - l.cfg.WindowSize.Milliseconds()

	pipe := l.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: l.member()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, l.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}

	attempts := count.Val()
	if attempts <= l.cfg.MaxAttempts {
		return true, l.cfg.MaxAttempts - attempts, 0, nil
	}

	oldest, err := l.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil {
		return false, 0, 0, fmt.Errorf("rate limit oldest %s: %w", key, err)
	}

	if len(oldest) == 0 {
		return false, 0, l.cfg.WindowSize, nil
	}

	wait := time.Duration(int64(oldest[0].Score)+l.cfg.WindowSize.Milliseconds()-now) * time.Millisecond

	return false, 0, max(wait, 0), nil
}

// RetryAfterSeconds rounds up so a client never retries early.
func RetryAfterSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}
