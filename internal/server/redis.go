package server

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a ResultCache backed by Redis, for deployments running more
// than one instance against the same reference data.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	ctx    context.Context
}

// NewRedisCache connects a cache to the Redis instance at addr.
func NewRedisCache(addr string, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
		ctx:    context.Background(),
	}
}

// Get returns the cached value for key, if any.
func (rc *RedisCache) Get(key string) (string, bool) {
	val, err := rc.client.Get(rc.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a value under key with the configured TTL.
func (rc *RedisCache) Set(key string, value string) error {
	return rc.client.Set(rc.ctx, key, value, rc.ttl).Err()
}
