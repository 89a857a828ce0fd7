package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
	"go.uber.org/zap"
)

var openDB = sql.Open

// PostgresOptions controls pool sizing and how long startup waits for the database.
type PostgresOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
	MaxElapsedTime  time.Duration
}

func DefaultPostgresOptions() PostgresOptions {
	return PostgresOptions{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 2 * time.Minute,
		PingTimeout:     5 * time.Second,
		MaxElapsedTime:  time.Minute,
	}
}

// ConnectPostgres opens the pool and pings it, retrying with exponential
// backoff while the database comes up.
func ConnectPostgres(ctx context.Context, databaseURL string, opts PostgresOptions, log *zap.Logger) (*sql.DB, error) {
	const operation = "database.ConnectPostgres"
	log = log.Named("database.postgres")

	if strings.TrimSpace(databaseURL) == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}

	db, err := openDB("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", operation, err)
	}
	db.SetMaxOpenConns(opts.MaxOpenConns)
	db.SetMaxIdleConns(opts.MaxIdleConns)
	db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	db.SetConnMaxIdleTime(opts.ConnMaxIdleTime)

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = opts.MaxElapsedTime
	policy.MaxInterval = 10 * time.Second

	err = backoff.RetryNotify(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, opts.PingTimeout)
			defer cancel()
			return db.PingContext(pingCtx)
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.Warn("postgres not reachable, retrying",
				zap.Error(err),
				zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	stats := db.Stats()
	log.Info("postgres connected",
		zap.Int("max_open", stats.MaxOpenConnections),
		zap.Int("open", stats.OpenConnections))
	return db, nil
}
