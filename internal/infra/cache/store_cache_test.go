package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_WithoutRedisReturnsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cache := New(Params{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.IsType(t, NoopStoreCache{}, cache)
}

func TestNoopStoreCache_AlwaysMisses(t *testing.T) {
	cache := NoopStoreCache{}
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, &entity.Store{Slug: "docesdaana"}))

	store, found, err := cache.GetBySlug(ctx, "docesdaana")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, store)
	assert.NoError(t, cache.Invalidate(ctx, "docesdaana"))
}

func TestRedisStoreCache_UnreachableServerReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	cache := NewRedisStoreCache(client, 0)

	_, found, err := cache.GetBySlug(context.Background(), "docesdaana")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestStoreKey(t *testing.T) {
	assert.Equal(t, "store:slug:docesdaana", storeKey("docesdaana"))
}
