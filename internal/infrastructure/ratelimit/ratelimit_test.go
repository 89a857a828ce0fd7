package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func TestMemoryWindow(t *testing.T) {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	w := NewMemoryWindow(func() time.Time { return now })
	rule := Rule{Limit: 2, Window: time.Minute}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, _ := w.Allow(ctx, "1.2.3.4|contact", rule)
		if !d.Allowed {
			t.Fatalf("hit %d should be allowed", i+1)
		}
		now = now.Add(10 * time.Second)
	}

	d, _ := w.Allow(ctx, "1.2.3.4|contact", rule)
	if d.Allowed {
		t.Fatalf("third hit inside the window must be rejected")
	}
	if d.RetryAfter != 40*time.Second {
		t.Fatalf("expected retry after 40s, got %s", d.RetryAfter)
	}

	if d, _ := w.Allow(ctx, "5.6.7.8|contact", rule); !d.Allowed {
		t.Fatalf("other keys are independent")
	}

	now = now.Add(41 * time.Second)
	if d, _ := w.Allow(ctx, "1.2.3.4|contact", rule); !d.Allowed {
		t.Fatalf("expected the oldest hit to have left the window")
	}
}

func TestMemoryWindow_SweepsIdleKeys(t *testing.T) {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	w := NewMemoryWindow(func() time.Time { return now })
	rule := Rule{Limit: 5, Window: 30 * time.Second}
	ctx := context.Background()

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		if d, _ := w.Allow(ctx, ip+"|contact", rule); !d.Allowed {
			t.Fatalf("first hit of %s should be allowed", ip)
		}
	}
	if len(w.hits) != 3 {
		t.Fatalf("expected 3 tracked keys, got %d", len(w.hits))
	}

	now = now.Add(2 * time.Minute)
	if d, _ := w.Allow(ctx, "10.0.0.9|contact", rule); !d.Allowed {
		t.Fatalf("new key should be allowed")
	}
	if len(w.hits) != 1 {
		t.Fatalf("idle keys must be dropped, %d left", len(w.hits))
	}
	if _, ok := w.hits["10.0.0.9|contact"]; !ok {
		t.Fatalf("active key must survive the sweep")
	}
}

func TestMemoryWindow_DisabledRule(t *testing.T) {
	w := NewMemoryWindow(nil)
	for i := 0; i < 10; i++ {
		if d, _ := w.Allow(context.Background(), "k", Rule{}); !d.Allowed {
			t.Fatalf("zero rule must not limit")
		}
	}
}

type stubLimiter struct {
	calls int
	d     Decision
	err   error
}

func (s *stubLimiter) Allow(context.Context, string, Rule) (Decision, error) {
	s.calls++
	return s.d, s.err
}

func TestFallback(t *testing.T) {
	rule := Rule{Limit: 1, Window: time.Minute}

	t.Run("primary answers", func(t *testing.T) {
		primary := &stubLimiter{d: Decision{Allowed: false, RetryAfter: time.Second}}
		secondary := &stubLimiter{d: Decision{Allowed: true}}
		f := NewFallback(primary, secondary, zap.NewNop())

		d, err := f.Allow(context.Background(), "k", rule)
		if err != nil || d.Allowed {
			t.Fatalf("expected primary decision, got %+v err=%v", d, err)
		}
		if secondary.calls != 0 {
			t.Fatalf("secondary must not be consulted")
		}
	})

	t.Run("primary error", func(t *testing.T) {
		primary := &stubLimiter{err: errors.New("redis down")}
		secondary := &stubLimiter{d: Decision{Allowed: true}}
		f := NewFallback(primary, secondary, zap.NewNop())

		for i := 0; i < 3; i++ {
			d, err := f.Allow(context.Background(), "k", rule)
			if err != nil || !d.Allowed {
				t.Fatalf("expected secondary decision, got %+v err=%v", d, err)
			}
		}
		if secondary.calls != 3 {
			t.Fatalf("expected 3 secondary calls, got %d", secondary.calls)
		}
	})

	t.Run("nil primary", func(t *testing.T) {
		secondary := &stubLimiter{d: Decision{Allowed: true}}
		f := NewFallback(nil, secondary, zap.NewNop())
		if _, err := f.Allow(context.Background(), "k", rule); err != nil || secondary.calls != 1 {
			t.Fatalf("expected secondary to be used directly")
		}
	})
}

func TestRedisWindow_UnreachableServerFallsBack(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	rw := NewRedisWindow(client)
	if _, err := rw.Allow(context.Background(), "k", Rule{Limit: 1, Window: time.Minute}); err == nil {
		t.Fatalf("expected error from unreachable redis")
	}

	f := NewFallback(rw, NewMemoryWindow(nil), zap.NewNop())
	rule := Rule{Limit: 1, Window: time.Minute}
	if d, err := f.Allow(context.Background(), "k", rule); err != nil || !d.Allowed {
		t.Fatalf("first hit should pass through the memory window, got %+v err=%v", d, err)
	}
	if d, _ := f.Allow(context.Background(), "k", rule); d.Allowed {
		t.Fatalf("second hit should be limited by the memory window")
	}
}
