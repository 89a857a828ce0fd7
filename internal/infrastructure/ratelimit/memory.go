package ratelimit

import (
	"context"
	"sync"
	"time"
)

const defaultSweepInterval = time.Minute

// MemoryWindow is an in-process sliding window log. Keys whose newest hit has
// left its window are swept at most once per sweep interval.
type MemoryWindow struct {
	mu         sync.Mutex
	hits       map[string]*windowLog
	now        func() time.Time
	sweepEvery time.Duration
	lastSweep  time.Time
}

type windowLog struct {
	times  []time.Time
	window time.Duration
}

var _ Limiter = (*MemoryWindow)(nil)

func NewMemoryWindow(now func() time.Time) *MemoryWindow {
	if now == nil {
		now = time.Now
	}
	return &MemoryWindow{
		hits:       make(map[string]*windowLog),
		now:        now,
		sweepEvery: defaultSweepInterval,
		lastSweep:  now(),
	}
}

func (m *MemoryWindow) Allow(_ context.Context, key string, rule Rule) (Decision, error) {
	if rule.Limit <= 0 || rule.Window <= 0 {
		return Decision{Allowed: true}, nil
	}
	now := m.now()
	cutoff := now.Add(-rule.Window)

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) >= m.sweepEvery {
		m.sweep(now)
	}

	entry, ok := m.hits[key]
	if !ok {
		entry = &windowLog{}
		m.hits[key] = entry
	}
	entry.window = rule.Window

	kept := entry.times[:0]
	for _, t := range entry.times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= rule.Limit {
		entry.times = kept
		return Decision{Allowed: false, RetryAfter: kept[0].Add(rule.Window).Sub(now)}, nil
	}
	entry.times = append(kept, now)
	return Decision{Allowed: true}, nil
}

func (m *MemoryWindow) sweep(now time.Time) {
	for key, entry := range m.hits {
		if len(entry.times) == 0 || !entry.times[len(entry.times)-1].After(now.Add(-entry.window)) {
			delete(m.hits, key)
		}
	}
	m.lastSweep = now
}
