package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client, mr
}

func TestRedisTranslationCache_SetGet(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestRedis(t)
	c := NewRedisTranslationCache(client, time.Minute)

	_, found, err := c.Get(ctx, 1, "WELCOME_MSG")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, 1, "WELCOME_MSG", "Welcome"))

	text, found, err := c.Get(ctx, 1, "WELCOME_MSG")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Welcome", text)

	_, found, err = c.Get(ctx, 2, "WELCOME_MSG")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisTranslationCache_Expires(t *testing.T) {
	ctx := context.Background()
	client, mr := setupTestRedis(t)
	c := NewRedisTranslationCache(client, 30*time.Second)

	require.NoError(t, c.Set(ctx, 1, "TITLE", "Title"))
	mr.FastForward(31 * time.Second)

	_, found, err := c.Get(ctx, 1, "TITLE")
	require.NoError(t, err)
	assert.False(t, found)
}
