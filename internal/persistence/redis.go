package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/config"
)

const redisDialCheckTimeout = 3 * time.Second

// OpenRedis returns a client for cfg. go-redis connects lazily, so an
// unreachable server only produces a warning here; the readiness probe keeps
// reporting it until the server answers.
func OpenRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisDialCheckTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis not reachable yet", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	}
	return client
}
