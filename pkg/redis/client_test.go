package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestSetGetDel(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, "stats", `{"totalStudents":3}`, time.Minute))

	val, err := Get(ctx, "stats")
	require.NoError(t, err)
	assert.Equal(t, `{"totalStudents":3}`, val)

	require.NoError(t, Del(ctx, "stats"))
	_, err = Get(ctx, "stats")
	assert.ErrorIs(t, err, goredis.Nil)
}

func TestExpiration(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, Set(ctx, "ephemeral", "x", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := Get(ctx, "ephemeral")
	assert.ErrorIs(t, err, goredis.Nil)
}

func TestUnavailableWithoutClient(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	assert.False(t, Available())
	assert.ErrorIs(t, Set(ctx, "k", "v", time.Minute), ErrUnavailable)
	_, err := Get(ctx, "k")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, Del(ctx, "k"), ErrUnavailable)
}

func TestInit(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Cleanup(func() { SetClient(nil) })

	require.NoError(t, Init("redis://"+mr.Addr(), ""))
	assert.True(t, Available())

	assert.Error(t, Init("://bad-url", ""))
}
