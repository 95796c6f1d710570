package ports

import (
	"context"
	"time"
)

// KVCache is a string cache with TTLs, used for resolved identities and
// backend list responses. Get returns domain.ErrNotFound on a miss.
type KVCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
