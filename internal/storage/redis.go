package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/radamesvaz/hellfire-gatekeeper-fe/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists the cart as a single JSON value under one key.
// No TTL: the cart survives until cleared by a placed order.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Save(ctx context.Context, lines []models.CartLine) error {

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart lines: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", s.key, err)
	}

	return nil
}

func (s *RedisStore) Load(ctx context.Context) ([]models.CartLine, error) {

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []models.CartLine{}, nil
		}

		return nil, fmt.Errorf("failed to get key %s from redis: %w", s.key, err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		slog.Warn("Persisted cart is malformed, starting empty",
			slog.String("key", s.key),
			slog.String("error", err.Error()))

		return []models.CartLine{}, nil
	}

	return lines, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
