package sessionstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/go-redis/redis/v8"
)

// RedisStore keeps the session record in a Redis string key without expiry.
type RedisStore struct {
	client *redis.Client
	key    string
}

// OpenRedis connects to addr and verifies the connection with PING.
func OpenRedis(ctx context.Context, addr string, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedisStore(client, key), nil
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key}
}

func (r *RedisStore) Save(ctx context.Context, user models.UserSession) error {
	b, err := encode(user)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, b, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session[%s]: %w", r.key, err)
	}
	return nil
}

func (r *RedisStore) Load(ctx context.Context) (*models.UserSession, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session[%s]: %w", r.key, err)
	}
	return decode(b)
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear session[%s]: %w", r.key, err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
