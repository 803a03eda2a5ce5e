package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultDraftTTL bounds how long an unreconciled draft survives. Long
// enough to cover the redirect from wizard completion into the editor with
// plenty of margin.
const DefaultDraftTTL = 24 * time.Hour

// RedisDraftStore keeps pending bundles in Redis.
type RedisDraftStore struct {
	Client *redis.Client
}

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{Client: client}
}

func (s *RedisDraftStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoDraft
	}
	if err != nil {
		return nil, fmt.Errorf("draft get %s: %w", key, err)
	}
	return val, nil
}

func (s *RedisDraftStore) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	if err := s.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("draft put %s: %w", key, err)
	}
	return nil
}

func (s *RedisDraftStore) Remove(ctx context.Context, key string) error {
	if err := s.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("draft remove %s: %w", key, err)
	}
	return nil
}
