// Package cache keeps encoded chart results in Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a ports.Cache backed by a go-redis client.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// Open returns nil when addr is empty, which callers treat as "no cache".
func Open(addr, password string, db int, ttl time.Duration) *Redis {
	if addr == "" {
		return nil
	}
	return New(redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}), ttl)
}

func New(c *redis.Client, ttl time.Duration) *Redis { return &Redis{client: c, ttl: ttl} }

func (r *Redis) Ping(ctx context.Context) error { return r.client.Ping(ctx).Err() }

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, val []byte) error {
	return r.client.Set(ctx, key, val, r.ttl).Err()
}

func (r *Redis) Close() error { return r.client.Close() }
