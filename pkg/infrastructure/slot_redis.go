package infrastructure

import (
	"context"
	"errors"

	"resume-builder/internal/draft"

	"github.com/redis/go-redis/v9"
)

// RedisSlot keeps the draft under a single key. SET replaces the value
// atomically, so readers see either the old or the new payload.
type RedisSlot struct {
	client *redis.Client
	key    string
}

func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{client: client, key: key}
}

func (s *RedisSlot) Read(ctx context.Context) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, draft.ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *RedisSlot) Write(ctx context.Context, payload []byte) error {
	return s.client.Set(ctx, s.key, payload, 0).Err()
}
