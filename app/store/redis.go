package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/redis/go-redis/v9"
)

// Redis implements key-value storage on top of a redis server.
// All keys are stored under prefix.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis connects to redis at the given URL (redis:// or rediss://) and pings it.
func NewRedis(ctx context.Context, url, prefix string) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Printf("[DEBUG] initialized redis store, prefix %q", prefix)
	return &Redis{client: client, prefix: prefix}, nil
}

// Get retrieves the value for the given key.
// Returns ErrNotFound if the key does not exist.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, keyErr("get", key, err)
	}
	return value, nil
}

// Set stores the value for the given key without expiration.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return keyErr("set", key, err)
	}
	return nil
}

// Delete removes the key. Returns ErrNotFound if the key does not exist.
func (r *Redis) Delete(ctx context.Context, key string) error {
	n, err := r.client.Del(ctx, r.prefix+key).Result()
	if err != nil {
		return keyErr("delete", key, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the redis client.
func (r *Redis) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	return nil
}
