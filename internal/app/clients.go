package app

import (
	"context"
	"fmt"

	"github.com/yungbote/coursekey/internal/data/cache"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type Clients struct {
	CodeCache cache.CodeCache
}

// wireClients uses Redis for the course code cache when REDIS_ADDR is set and an
// in-process LRU otherwise.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, using in-process course code cache")
		return Clients{CodeCache: cache.NewMemoryCodeCache(cfg.CourseCodeLRU, cfg.CourseCodeTTL)}, nil
	}
	codes, err := cache.NewRedisCodeCache(ctx, log, cache.RedisConfig{
		Addr: cfg.RedisAddr,
		TTL:  cfg.CourseCodeTTL,
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init redis code cache: %w", err)
	}
	return Clients{CodeCache: codes}, nil
}
