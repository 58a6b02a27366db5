package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domrepo "StockScope/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements CacheStore on Redis for deployments that already
// run one; expiry is delegated to Redis TTLs so lazy eviction comes for
// free. Analysis history stays in SQLite regardless of cache backend.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// RedisOptions configures the Redis cache backend.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(opts RedisOptions) (*RedisCache, error) {
	if opts.Prefix == "" {
		opts.Prefix = "stockscope"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisCache{client: client, prefix: opts.Prefix}, nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error { return c.client.Close() }

func (c *RedisCache) key(ticker string, cat domrepo.Category) string {
	return fmt.Sprintf("%s:%s:%s", c.prefix, cat, normalizeTicker(ticker))
}

func (c *RedisCache) Get(ctx context.Context, ticker string, cat domrepo.Category, dest interface{}) error {
	data, err := c.client.Get(ctx, c.key(ticker, cat)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domrepo.ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		_ = c.client.Unlink(ctx, c.key(ticker, cat)).Err()
		return domrepo.ErrCacheMiss
	}
	return nil
}

func (c *RedisCache) Put(ctx context.Context, ticker string, cat domrepo.Category, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis marshal: %w", err)
	}
	if err := c.client.Set(ctx, c.key(ticker, cat), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, ticker string, cat domrepo.Category) error {
	if err := c.client.Unlink(ctx, c.key(ticker, cat)).Err(); err != nil {
		return fmt.Errorf("redis unlink: %w", err)
	}
	return nil
}

func (c *RedisCache) Clear(ctx context.Context) error {
	for _, cat := range []domrepo.Category{domrepo.CategoryPriceSeries, domrepo.CategoryFundamentals} {
		keys, err := c.client.Keys(ctx, fmt.Sprintf("%s:%s:*", c.prefix, cat)).Result()
		if err != nil {
			return fmt.Errorf("redis keys: %w", err)
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("redis unlink: %w", err)
		}
	}
	return nil
}

func (c *RedisCache) Stats(ctx context.Context) (map[domrepo.Category]int, error) {
	stats := make(map[domrepo.Category]int, 2)
	for _, cat := range []domrepo.Category{domrepo.CategoryPriceSeries, domrepo.CategoryFundamentals} {
		keys, err := c.client.Keys(ctx, fmt.Sprintf("%s:%s:*", c.prefix, cat)).Result()
		if err != nil {
			return nil, fmt.Errorf("redis keys: %w", err)
		}
		stats[cat] = len(keys)
	}
	return stats, nil
}

var _ domrepo.CacheStore = (*RedisCache)(nil)
