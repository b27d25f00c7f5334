// Package cache provides the read-through store cache.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	storeKeyPrefix = "store:slug:"
	defaultTTL     = 5 * time.Minute
)

// Params holds the dependencies of the store cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type redisStoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a Redis-backed store cache, or a no-op cache when Redis is not configured.
func New(params Params) service.StoreCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, store cache disabled")

		return NoopStoreCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable cache only degrades reads; it never blocks startup.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, store cache will miss", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisStoreCache(client, cfg.TTL)
}

// NewRedisStoreCache wraps an existing client.
func NewRedisStoreCache(client *redis.Client, ttl time.Duration) service.StoreCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisStoreCache{client: client, ttl: ttl}
}

func storeKey(slug string) string {
	return storeKeyPrefix + slug
}

func (c *redisStoreCache) GetBySlug(ctx context.Context, slug string) (*entity.Store, bool, error) {
	raw, err := c.client.Get(ctx, storeKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to read store cache")
	}

	var store entity.Store
	if err := json.Unmarshal(raw, &store); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode cached store")
	}

	return &store, true, nil
}

func (c *redisStoreCache) Set(ctx context.Context, store *entity.Store) error {
	raw, err := json.Marshal(store)
	if err != nil {
		return errors.Wrap(err, "failed to encode store")
	}

	if err := c.client.Set(ctx, storeKey(store.Slug), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write store cache")
	}

	return nil
}

func (c *redisStoreCache) Invalidate(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, storeKey(slug)).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate store cache")
	}

	return nil
}

// NoopStoreCache always misses.
type NoopStoreCache struct{}

func (NoopStoreCache) GetBySlug(context.Context, string) (*entity.Store, bool, error) {
	return nil, false, nil
}

func (NoopStoreCache) Set(context.Context, *entity.Store) error { return nil }

func (NoopStoreCache) Invalidate(context.Context, string) error { return nil }
