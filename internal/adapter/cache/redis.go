package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"sem-planner/internal/core/domain"
)

// Connect initializes a Redis client from URL or host:port input.
func Connect(_ context.Context, redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// RedisPlanCache stores whole plans as JSON under prefix+id.
type RedisPlanCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisPlanCache creates the plan cache adapter. A zero ttl keeps
// entries until evicted.
func NewRedisPlanCache(client redis.Cmdable, prefix string, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisPlanCache) Get(ctx context.Context, id string) (*domain.Plan, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var out domain.Plan
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode cached plan %s: %w", id, err)
	}
	return &out, nil
}

func (c *RedisPlanCache) Set(ctx context.Context, plan *domain.Plan) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(plan.ID), raw, c.ttl).Err()
}

func (c *RedisPlanCache) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisPlanCache) key(id string) string {
	return c.prefix + id
}
