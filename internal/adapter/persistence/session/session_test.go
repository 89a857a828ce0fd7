package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio_api/internal/domain/wizard"

	"github.com/redis/go-redis/v9"
)

type fakeKV struct {
	data map[string]string
	ttl  map[string]time.Duration
	err  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.data[key] = string(value.([]byte))
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	kv := newFakeKV()
	store := NewRedisStore(kv, 72*time.Hour)

	d := wizard.NewDraft("d-1", time.Now().UTC())
	d.SetContact(wizard.ContactInfo{Name: "Erika", Email: "erika@example.com"})
	if err := store.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if kv.ttl["draft:d-1"] != 72*time.Hour {
		t.Fatalf("expected ttl on draft key, got %v", kv.ttl)
	}

	got, err := store.Get(ctx, "d-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.Contact.Email != "erika@example.com" || got.Step != wizard.StepContactInfo {
		t.Fatalf("unexpected draft %+v", got)
	}

	missing, err := store.Get(ctx, "nope")
	if err != nil || missing != nil {
		t.Fatalf("expected nil draft for unknown id, got %+v err=%v", missing, err)
	}

	kv.err = errors.New("connection reset")
	if _, err := store.Get(ctx, "d-1"); err == nil {
		t.Fatalf("expected redis error to surface")
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Hour)
	store.now = func() time.Time { return now }

	d := wizard.NewDraft("d-1", now)
	if err := store.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	d.SetContact(wizard.ContactInfo{Name: "changed after save"})
	got, _ := store.Get(ctx, "d-1")
	if got == nil || got.Contact.Name != "" {
		t.Fatalf("store must not share memory with the caller, got %+v", got)
	}

	now = now.Add(2 * time.Hour)
	if got, _ := store.Get(ctx, "d-1"); got != nil {
		t.Fatalf("expected expired draft to be gone")
	}
}
