package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redis tests need a running server, e.g. SHADE_TEST_REDIS=redis://localhost:6379/15
func TestRedis(t *testing.T) {
	url := os.Getenv("SHADE_TEST_REDIS")
	if url == "" {
		t.Skip("SHADE_TEST_REDIS not set")
	}
	ctx := context.Background()
	prefix := "shade-test:" + uuid.NewString() + ":"

	st, err := Open(ctx, url, Options{RedisPrefix: prefix})
	require.NoError(t, err)
	defer st.Close()
	rd, ok := st.(*Redis)
	require.True(t, ok)
	defer rd.client.Del(ctx, prefix+"visitor/1/theme")

	t.Run("missing key", func(t *testing.T) {
		_, err := rd.Get(ctx, "visitor/1/theme")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, rd.Set(ctx, "visitor/1/theme", []byte("dark-mode")))
		val, err := rd.Get(ctx, "visitor/1/theme")
		require.NoError(t, err)
		assert.Equal(t, "dark-mode", string(val))

		raw, err := rd.client.Get(ctx, prefix+"visitor/1/theme").Result()
		require.NoError(t, err)
		assert.Equal(t, "dark-mode", raw, "stored under prefix")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, rd.Set(ctx, "visitor/2/theme", []byte("dark-mode")))
		require.NoError(t, rd.Delete(ctx, "visitor/2/theme"))
		_, err := rd.Get(ctx, "visitor/2/theme")
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, rd.Delete(ctx, "visitor/2/theme"), ErrNotFound)
	})
}

func TestNewRedis_Unreachable(t *testing.T) {
	_, err := NewRedis(context.Background(), "redis://127.0.0.1:1/0", "shade:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping redis")
}
