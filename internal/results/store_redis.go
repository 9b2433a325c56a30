package results

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"aurelia-backend/internal/recommendations"
	"aurelia-backend/internal/shared/telemetry"
)

// RedisStore keeps each visitor's slot under "aureliaResult:<visitor>".
// A zero TTL keeps slots until overwritten or cleared.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(visitorID string) string {
	return SlotName + ":" + visitorID
}

func (s *RedisStore) Save(ctx context.Context, visitorID string, result recommendations.Result) error {
	if visitorID == "" {
		return ErrVisitorRequired
	}
	raw, err := Encode(result)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, redisKey(visitorID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, visitorID string) (recommendations.Result, bool, error) {
	raw, err := s.client.Get(ctx, redisKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return recommendations.Result{}, false, nil
	}
	if err != nil {
		return recommendations.Result{}, false, fmt.Errorf("redis get: %w", err)
	}
	result, ok := Decode(raw)
	if !ok {
		telemetry.Warn("results.malformed_slot", map[string]any{"store": "redis", "visitor_id": visitorID})
	}
	return result, ok, nil
}

func (s *RedisStore) Clear(ctx context.Context, visitorID string) error {
	if err := s.client.Del(ctx, redisKey(visitorID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
