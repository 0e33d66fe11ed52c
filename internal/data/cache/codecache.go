package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/coursekey/internal/platform/logger"
)

// CodeCache maps course join codes to course IDs. Both are derived from the
// same immutable inputs, so entries never go stale; the TTL only bounds memory.
type CodeCache interface {
	Get(ctx context.Context, code string) (courseID string, ok bool, err error)
	Set(ctx context.Context, code, courseID string) error
	Delete(ctx context.Context, code string) error
	Close() error
}

type RedisConfig struct {
	Addr   string
	Prefix string
	TTL    time.Duration
}

type redisCodeCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCodeCache(ctx context.Context, log *logger.Logger, cfg RedisConfig) (CodeCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "coursecode:"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisCodeCache{
		log:    log.With("service", "RedisCodeCache"),
		rdb:    rdb,
		prefix: prefix,
		ttl:    cfg.TTL,
	}, nil
}

func (c *redisCodeCache) key(code string) string { return c.prefix + code }

func (c *redisCodeCache) Get(ctx context.Context, code string) (string, bool, error) {
	v, err := c.rdb.Get(ctx, c.key(code)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (c *redisCodeCache) Set(ctx context.Context, code, courseID string) error {
	return c.rdb.Set(ctx, c.key(code), courseID, c.ttl).Err()
}

func (c *redisCodeCache) Delete(ctx context.Context, code string) error {
	return c.rdb.Del(ctx, c.key(code)).Err()
}

func (c *redisCodeCache) Close() error {
	return c.rdb.Close()
}

type memoryCodeCache struct {
	lru *expirable.LRU[string, string]
}

// NewMemoryCodeCache is the in-process fallback used when no Redis is configured.
func NewMemoryCodeCache(size int, ttl time.Duration) CodeCache {
	if size <= 0 {
		size = 4096
	}
	return &memoryCodeCache{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (c *memoryCodeCache) Get(_ context.Context, code string) (string, bool, error) {
	v, ok := c.lru.Get(code)
	return v, ok, nil
}

func (c *memoryCodeCache) Set(_ context.Context, code, courseID string) error {
	c.lru.Add(code, courseID)
	return nil
}

func (c *memoryCodeCache) Delete(_ context.Context, code string) error {
	c.lru.Remove(code)
	return nil
}

func (c *memoryCodeCache) Close() error {
	c.lru.Purge()
	return nil
}
