package scheduler

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/pkg/config"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/queries"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 30 * time.Second

// SweepReport is the outcome of one sweep run.
type SweepReport struct {
	NoShows       []*queries.RentalView
	OverThreshold []*queries.VehicleView
}

// Sweeper periodically surfaces no-show rentals and vehicles past their
// mileage threshold. It only reports; rental state is left to admins.
type Sweeper struct {
	reports queries.ReportQueries
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

func NewSweeper(reports queries.ReportQueries, cfg config.SchedulerConfig, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		reports: reports,
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		spec:    cfg.SweepSpec,
		logger:  logger,
	}
}

// Start registers the sweep job and starts the cron runner.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runScheduled); err != nil {
		return errs.Wrapf(err, "invalid sweep schedule %q", s.spec)
	}
	s.cron.Start()
	s.logger.Info("Scheduler started", slog.String("spec", s.spec))
	return nil
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Sweeper) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.Sweep(ctx); err != nil {
		s.logger.Error("Sweep failed", slog.String("error", err.Error()))
	}
}

// Sweep runs one pass and logs what it found.
func (s *Sweeper) Sweep(ctx context.Context) (SweepReport, error) {
	noShows, err := s.reports.NoShows(ctx)
	if err != nil {
		return SweepReport{}, errs.Wrap(err, "no-show report")
	}
	worn, err := s.reports.OverThresholdVehicles(ctx)
	if err != nil {
		return SweepReport{}, errs.Wrap(err, "over-threshold report")
	}

	for _, r := range noShows {
		s.logger.Warn("Rental not picked up",
			slog.String("rental_id", r.ID.String()),
			slog.String("vehicle_id", r.VehicleID.String()),
			slog.Time("start_at", r.StartAt))
	}
	for _, v := range worn {
		s.logger.Warn("Vehicle over mileage threshold",
			slog.String("plate", v.Plate),
			slog.Float64("mileage", v.Mileage),
			slog.Float64("threshold", v.MileageThreshold))
	}

	s.logger.Info("Sweep finished",
		slog.Int("no_shows", len(noShows)),
		slog.Int("over_threshold", len(worn)))

	return SweepReport{NoShows: noShows, OverThreshold: worn}, nil
}
