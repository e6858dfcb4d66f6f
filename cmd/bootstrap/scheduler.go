package bootstrap

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/scheduler"
	"vehicle-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(startScheduler),
)

func startScheduler(lc fx.Lifecycle, cfg config.Config, reports queries.ReportQueries, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		return
	}
	sweeper := scheduler.NewSweeper(reports, cfg.Scheduler, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
}
