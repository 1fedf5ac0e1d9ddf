package preference

import (
	"context"

	"go.uber.org/zap"

	"github.com/wichananm65/plant-shop-storefront/internal/infrastructure/database/postgres"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// OpenConfig selects and configures a preference backend.
type OpenConfig struct {
	Backend     string
	DatabaseURL string
	RedisAddr   string
	RedisPass   string
}

// Open returns the configured store and a cleanup func. A backend that
// cannot be reached is replaced by an in-memory store so the storefront
// keeps working without persistence.
func Open(ctx context.Context, cfg OpenConfig, logger *zap.Logger) (Store, func()) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func() {}

	switch cfg.Backend {
	case BackendPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Warn("preferences: postgres unavailable, falling back to memory", zap.Error(err))
			return NewInMemoryStore(), noop
		}
		store := NewPostgresStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Warn("preferences: could not create table, falling back to memory", zap.Error(err))
			db.Close()
			return NewInMemoryStore(), noop
		}
		return store, func() { db.Close() }
	case BackendRedis:
		client := NewRedisClient(cfg.RedisAddr, cfg.RedisPass)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("preferences: redis unavailable, falling back to memory", zap.Error(err))
			client.Close()
			return NewInMemoryStore(), noop
		}
		return NewRedisStore(client), func() { client.Close() }
	default:
		return NewInMemoryStore(), noop
	}
}
