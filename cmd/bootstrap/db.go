package bootstrap

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/infra/db"
	"vehicle-rental/internal/infra/memstore"
	"vehicle-rental/internal/infra/migrations"
	"vehicle-rental/internal/infra/sqlc"
	"vehicle-rental/internal/infra/uow"
	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork opens the storage driver named by STORAGE_DRIVER. The postgres
// driver applies pending migrations before the first request is served.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Info("Using in-memory storage")
		return memstore.NewStore(cfg.Booking.LockTimeout, logger), nil
	}

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := migrations.Apply(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	logger.Info("Using postgres storage", slog.String("host", cfg.DB.Host), slog.String("db", cfg.DB.DBName))
	return uow.NewPostgresUoW(pool, sqlc.New(), cfg.Booking, logger), nil
}
