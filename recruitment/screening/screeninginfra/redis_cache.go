package screeninginfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/talentsift/cvanalyzer/recruitment/screening"
)

// RedisResultCache implements screening.ResultCache using Redis
type RedisResultCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisResultCache creates a new Redis-based analysis cache
func NewRedisResultCache(client *redis.Client, keyPrefix string) screening.ResultCache {
	return &RedisResultCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (c *RedisResultCache) redisKey(key string) string {
	return fmt.Sprintf("%s:%s", c.keyPrefix, key)
}

// Get returns the cached response for key, or (nil, nil) on a miss
func (c *RedisResultCache) Get(ctx context.Context, key string) (*screening.AnalyzeResponse, error) {
	data, err := c.client.Get(ctx, c.redisKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}

	var response screening.AnalyzeResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("cache unmarshal %s: %w", key, err)
	}

	return &response, nil
}

// Set stores a response under key for ttl
func (c *RedisResultCache) Set(ctx context.Context, key string, response *screening.AnalyzeResponse, ttl time.Duration) error {
	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}

	if err := c.client.Set(ctx, c.redisKey(key), data, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}

	return nil
}
