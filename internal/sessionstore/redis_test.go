package sessionstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableRedis(t *testing.T) *RedisStore {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	s := NewRedisStore(client, "")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRedisStore_UnavailableIsNotNoSession(t *testing.T) {
	s := unreachableRedis(t)
	ctx := context.Background()

	_, err := s.Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSession)
	assert.Contains(t, err.Error(), "failed to load session["+DefaultKey+"]")

	err = s.Save(ctx, models.UserSession{Name: "Ana", Email: "a@x.com"})
	require.Error(t, err)

	require.Error(t, s.Clear(ctx))
}

func TestOpenRedis_PingFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := OpenRedis(ctx, "127.0.0.1:1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping")
}

// TestRedisStore_Live runs against a real server when
// STOREFRONT_TEST_REDIS_ADDR is set.
func TestRedisStore_Live(t *testing.T) {
	addr := os.Getenv("STOREFRONT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STOREFRONT_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	s, err := OpenRedis(ctx, addr, "@storefront-test:user")
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Clear(ctx))

	_, err = s.Load(ctx)
	require.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, s.Save(ctx, models.UserSession{Name: "Ana", Email: "a@x.com"}))
	u, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)

	require.NoError(t, s.client.Set(ctx, s.key, "corrupt", 0).Err())
	_, err = s.Load(ctx)
	require.ErrorIs(t, err, ErrMalformedRecord)

	require.NoError(t, s.Clear(ctx))
}
