package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"

	"github.com/Rudolfananta/ruangan-undiksha-web/internal/domain"
)

// Redis backs the identity and list caches. Values are JSON blobs; the
// services own (de)serialization and key naming.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping().Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{client: client}, nil
}

func (r *Redis) Get(_ context.Context, key string) (string, error) {
	val, err := r.client.Get(key).Result()
	if err == redis.Nil {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

func (r *Redis) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if err := r.client.Set(key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *Redis) Del(_ context.Context, keys ...string) error {
	if err := r.client.Del(keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
