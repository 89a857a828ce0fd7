package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"studio_api/internal/domain/wizard"
	"studio_api/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const draftKeyPrefix = "draft:"

// kv is the part of the Redis API the draft store needs.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps drafts as JSON under draft:<id>; every save renews the TTL.
type RedisStore struct {
	client kv
	ttl    time.Duration
}

var _ interfaces.IDraftStore = (*RedisStore)(nil)

func NewRedisStore(client kv, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, d *wizard.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return s.client.Set(ctx, draftKeyPrefix+d.ID, data, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*wizard.Draft, error) {
	data, err := s.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	var d wizard.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("unmarshal draft: %w", err)
	}
	return &d, nil
}
