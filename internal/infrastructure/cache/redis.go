package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Connect creates the shared Redis client and waits for it to answer PING.
func Connect(ctx context.Context, addr, password string, db int, maxWait time.Duration, log *zap.Logger) (*redis.Client, error) {
	const operation = "cache.Connect"
	log = log.Named("cache.redis")

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		PoolSize:     50,
		MinIdleConns: 5,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxWait
	policy.MaxInterval = 5 * time.Second

	err := backoff.RetryNotify(
		func() error { return client.Ping(ctx).Err() },
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.Warn("redis not reachable, retrying",
				zap.String("addr", addr),
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	log.Info("redis connected", zap.String("addr", addr), zap.Int("db", db))
	return client, nil
}
