package cache_test

import (
	"context"
	"fmt"
	"kmc/infras/otel/mocks"
	"kmc/shared/cache"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomView struct {
	RoomNo string `json:"room_no"`
	Status string `json:"status"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestSaveAndGet(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "room:get:201", roomView{RoomNo: "201", Status: "C"}, 60))

	var got roomView
	require.NoError(t, c.Get(ctx, "room:get:201", &got))
	assert.Equal(t, roomView{RoomNo: "201", Status: "C"}, got)

	require.NoError(t, c.Save(ctx, "plain", "value", 60))

	var plain string
	require.NoError(t, c.Get(ctx, "plain", &plain))
	assert.Equal(t, "value", plain)
}

func TestGetMissReturnsNil(t *testing.T) {
	c, _ := newCache(t)

	var got roomView
	err := c.Get(context.Background(), "missing", &got)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestClearByPrefix(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "room:list:a", 1, 60))
	require.NoError(t, c.Save(ctx, "room:get:201", 2, 60))
	require.NoError(t, c.Save(ctx, "meal:list:b", 3, 60))

	require.NoError(t, c.Clear(ctx, "room:*"))

	assert.False(t, server.Exists("room:list:a"))
	assert.False(t, server.Exists("room:get:201"))
	assert.True(t, server.Exists("meal:list:b"))

	require.NoError(t, c.Delete(ctx, "meal:list:b"))
	assert.False(t, server.Exists("meal:list:b"))
}

func TestClearAcrossBatches(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	for i := range 250 {
		require.NoError(t, server.Set(fmt.Sprintf("reservation:list:%d", i), "x"))
	}

	require.NoError(t, server.Set("dashboard:get:20251015", "x"))

	require.NoError(t, c.Clear(ctx, "reservation:*"))

	assert.Equal(t, []string{"dashboard:get:20251015"}, server.Keys())
}

func TestIncrWindow(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := c.Incr(ctx, "limiter:10.0.0.1", 60)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 60*time.Second, server.TTL("limiter:10.0.0.1"))

	server.FastForward(61 * time.Second)

	got, err := c.Incr(ctx, "limiter:10.0.0.1", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
