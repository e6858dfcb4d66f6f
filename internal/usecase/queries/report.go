package queries

import (
	"context"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/usecase/shared"
)

type ReportQueries interface {
	// NoShows: approved, never issued, start already passed.
	NoShows(ctx context.Context) ([]*RentalView, error)
	OverThresholdVehicles(ctx context.Context) ([]*VehicleView, error)
	Cancellations(ctx context.Context) ([]*RentalView, error)
	AllVehicles(ctx context.Context, includeDeleted bool) ([]*VehicleView, error)
}

type reportQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReportQueries(uow shared.UnitOfWork, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{uow: uow, clock: clk}
}

func (q *reportQueriesImpl) NoShows(ctx context.Context) ([]*RentalView, error) {
	now := q.clock.Now()
	return q.rentals(ctx, func(ctx context.Context, repo shared.RentalRepository) ([]*rental.Rental, error) {
		return repo.ListNoShows(ctx, now)
	})
}

func (q *reportQueriesImpl) Cancellations(ctx context.Context) ([]*RentalView, error) {
	return q.rentals(ctx, func(ctx context.Context, repo shared.RentalRepository) ([]*rental.Rental, error) {
		return repo.ListByBookingStatus(ctx, rental.BookingCancelled)
	})
}

func (q *reportQueriesImpl) OverThresholdVehicles(ctx context.Context) ([]*VehicleView, error) {
	var views []*VehicleView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		vs, err := tx.Vehicles().ListOverThreshold(ctx)
		if err != nil {
			return err
		}
		views = toVehicleViews(vs)
		return nil
	})
	return views, err
}

func (q *reportQueriesImpl) AllVehicles(ctx context.Context, includeDeleted bool) ([]*VehicleView, error) {
	var views []*VehicleView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		vs, err := tx.Vehicles().ListAll(ctx, includeDeleted)
		if err != nil {
			return err
		}
		views = toVehicleViews(vs)
		return nil
	})
	return views, err
}

func (q *reportQueriesImpl) rentals(
	ctx context.Context,
	load func(ctx context.Context, repo shared.RentalRepository) ([]*rental.Rental, error),
) ([]*RentalView, error) {
	var views []*RentalView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rs, err := load(ctx, tx.Rentals())
		if err != nil {
			return err
		}
		views = toRentalViews(rs)
		return nil
	})
	return views, err
}
