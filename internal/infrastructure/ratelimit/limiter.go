// Package ratelimit implements sliding-window request limits keyed by an
// arbitrary string (client IP plus route group).
package ratelimit

import (
	"context"
	"time"
)

// Rule allows Limit hits per Window.
type Rule struct {
	Limit  int
	Window time.Duration
}

type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

type Limiter interface {
	Allow(ctx context.Context, key string, rule Rule) (Decision, error)
}
