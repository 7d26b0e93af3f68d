package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyspace = "boardsync:query:"

// Redis stores cache entries in Redis so separate client invocations share
// one query cache. Read errors degrade to a cache miss; the suspect entry is
// dropped so the next read refetches.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed store. A zero ttl keeps entries until they
// are invalidated.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl < 0 {
		ttl = 0
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, redisKeyspace+key.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			_ = r.client.Del(ctx, redisKeyspace+key.String()).Err()
		}
		return nil, false, nil
	}
	return data, true, nil
}

func (r *Redis) Set(ctx context.Context, key Key, value []byte) error {
	return r.client.Set(ctx, redisKeyspace+key.String(), value, r.ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, keys ...Key) error {
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = redisKeyspace + k.String()
	}
	return r.client.Del(ctx, names...).Err()
}

func (r *Redis) DeletePrefix(ctx context.Context, prefix Key) error {
	if err := r.client.Del(ctx, redisKeyspace+prefix.String()).Err(); err != nil {
		return err
	}
	var cursor uint64
	pattern := redisKeyspace + prefix.String() + ":*"
	for {
		names, next, err := r.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(names) > 0 {
			if err := r.client.Del(ctx, names...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
