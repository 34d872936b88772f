package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores preferences as plain string keys under a prefix.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis returns a backend over client, namespacing keys with prefix.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

func (r *Redis) GetBoolean(ctx context.Context, key string, def bool) (bool, error) {
	raw, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("redis get %s: %w", r.key(key), err)
	}
	switch raw {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return def, fmt.Errorf("%w: %s=%q", ErrCorruptValue, r.key(key), raw)
	}
}

func (r *Redis) PutBoolean(ctx context.Context, key string, value bool) error {
	raw := "0"
	if value {
		raw = "1"
	}
	if err := r.client.Set(ctx, r.key(key), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key(key), err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
