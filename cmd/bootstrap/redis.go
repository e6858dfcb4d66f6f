package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/infra/idempotency"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var IdempotencyModule = fx.Module("idempotency",
	fx.Provide(
		NewIdempotencyStore,
	),
)

// NewIdempotencyStore uses Redis when REDIS_ADDR is set so keys survive
// restarts and are shared between replicas.
func NewIdempotencyStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (commands.IdempotencyStore, error) {
	if cfg.Redis.Addr == "" {
		return idempotency.NewMemoryStore(cfg.Redis.IdempotencyTTL, clk), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	logger.Info("Using redis idempotency store", slog.String("addr", cfg.Redis.Addr))
	return idempotency.NewRedisStore(client, cfg.Redis.IdempotencyTTL, logger), nil
}
