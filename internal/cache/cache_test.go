// internal/cache/cache_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/config"
)

func testCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	return NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)

	c.Set(ctx, "key", []byte("value"), time.Minute)
	c.Delete(ctx, "key")
}

func TestNewWithoutAddrReturnsNil(t *testing.T) {
	assert.Nil(t, New(config.RedisConfig{}))
}

func TestSetGetDelete(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)

	c.Set(ctx, "key", []byte(`{"a":1}`), time.Minute)

	val, ok := c.Get(ctx, "key")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), val)

	c.Delete(ctx, "key")
	_, ok = c.Get(ctx, "key")
	assert.False(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	c.Set(ctx, "key", []byte("value"), time.Minute)
	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
}
