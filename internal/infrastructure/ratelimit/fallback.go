package ratelimit

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

// Fallback consults primary and switches to secondary while primary errors.
// A nil primary means secondary is used directly.
type Fallback struct {
	primary   Limiter
	secondary Limiter
	log       *zap.Logger
	degraded  atomic.Bool
}

var _ Limiter = (*Fallback)(nil)

func NewFallback(primary, secondary Limiter, log *zap.Logger) *Fallback {
	return &Fallback{primary: primary, secondary: secondary, log: log.Named("ratelimit.fallback")}
}

func (f *Fallback) Allow(ctx context.Context, key string, rule Rule) (Decision, error) {
	if f.primary == nil {
		return f.secondary.Allow(ctx, key, rule)
	}
	d, err := f.primary.Allow(ctx, key, rule)
	if err == nil {
		if f.degraded.CompareAndSwap(true, false) {
			f.log.Info("primary limiter recovered")
		}
		return d, nil
	}
	if f.degraded.CompareAndSwap(false, true) {
		f.log.Warn("primary limiter failed, using in-process window", zap.Error(err))
	}
	return f.secondary.Allow(ctx, key, rule)
}
