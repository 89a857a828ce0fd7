package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisWindow is a sliding window log stored in a sorted set per key, shared
// by every API instance.
type RedisWindow struct {
	client redis.Cmdable
	now    func() time.Time
}

var _ Limiter = (*RedisWindow)(nil)

func NewRedisWindow(client redis.Cmdable) *RedisWindow {
	return &RedisWindow{client: client, now: time.Now}
}

func (r *RedisWindow) Allow(ctx context.Context, key string, rule Rule) (Decision, error) {
	if rule.Limit <= 0 || rule.Window <= 0 {
		return Decision{Allowed: true}, nil
	}
	now := r.now()
	nowMs := now.UnixMilli()
	windowMs := rule.Window.Milliseconds()
	k := keyPrefix + key
	member := ulid.Make().String()

	var (
		card   *redis.IntCmd
		oldest *redis.ZSliceCmd
	)
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, k, "0", strconv.FormatInt(nowMs-windowMs, 10))
		p.ZAdd(ctx, k, redis.Z{Score: float64(nowMs), Member: member})
		card = p.ZCard(ctx, k)
		oldest = p.ZRangeWithScores(ctx, k, 0, 0)
		p.PExpire(ctx, k, rule.Window)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: redis window: %w", err)
	}

	if card.Val() <= int64(rule.Limit) {
		return Decision{Allowed: true}, nil
	}

	// Rejected hits do not count against the window.
	if err := r.client.ZRem(ctx, k, member).Err(); err != nil {
		return Decision{}, fmt.Errorf("ratelimit: redis window: %w", err)
	}
	retry := rule.Window
	if zs := oldest.Val(); len(zs) > 0 {
		retry = time.Duration(int64(zs[0].Score)+windowMs-nowMs) * time.Millisecond
	}
	return Decision{Allowed: false, RetryAfter: retry}, nil
}
