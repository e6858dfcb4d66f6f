package repository

import (
	"context"
	"log/slog"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/repository/converter"
	"vehicle-rental/internal/infra/sqlc"

	"github.com/google/uuid"
)

type RentalRepository struct {
	queries RentalQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewRentalRepository(queries RentalQueries, db sqlc.DBTX, logger *slog.Logger) *RentalRepository {
	return &RentalRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// Create surfaces an exclusion violation as KindConflict.
func (r *RentalRepository) Create(ctx context.Context, rent *rental.Rental) error {
	if err := r.queries.CreateRental(ctx, r.db, converter.RentalToInfra(rent)); err != nil {
		return wrap(r.logger, "failed to create rental", err)
	}
	return nil
}

func (r *RentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.GetRentalByID(ctx, r.db, id)
	if err != nil {
		return nil, wrap(r.logger, "failed to find rental", err)
	}
	return converter.RentalToDomain(row), nil
}

func (r *RentalRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	row, err := r.queries.GetRentalByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, wrap(r.logger, "failed to lock rental", err)
	}
	return converter.RentalToDomain(row), nil
}

func (r *RentalRepository) Update(ctx context.Context, rent *rental.Rental) error {
	affected, err := r.queries.UpdateRental(ctx, r.db, converter.RentalToInfra(rent))
	if err != nil {
		return wrap(r.logger, "failed to update rental", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "rental not found", nil)
	}
	return nil
}

func (r *RentalRepository) ConflictingVehicleIDs(ctx context.Context, vehicleIDs []uuid.UUID, slot rental.TimeSlot) (map[uuid.UUID]struct{}, error) {
	busy := map[uuid.UUID]struct{}{}
	if len(vehicleIDs) == 0 {
		return busy, nil
	}

	ids := make([]string, 0, len(vehicleIDs))
	for _, id := range vehicleIDs {
		ids = append(ids, id.String())
	}
	window := slot.Buffered()

	rows, err := r.queries.ConflictingVehicleIDs(ctx, r.db, sqlc.ConflictingVehicleIDsParams{
		VehicleIDs: ids,
		From:       window.Start(),
		To:         window.End(),
	})
	if err != nil {
		return nil, wrap(r.logger, "failed to check rental overlap", err)
	}
	for _, id := range rows {
		busy[id] = struct{}{}
	}
	return busy, nil
}

func (r *RentalRepository) HasBlocking(ctx context.Context, vehicleID uuid.UUID) (bool, error) {
	exists, err := r.queries.HasBlockingRental(ctx, r.db, vehicleID)
	if err != nil {
		return false, wrap(r.logger, "failed to check blocking rentals", err)
	}
	return exists, nil
}

func (r *RentalRepository) ListNoShows(ctx context.Context, now time.Time) ([]*rental.Rental, error) {
	rows, err := r.queries.ListNoShowRentals(ctx, r.db, now)
	if err != nil {
		return nil, wrap(r.logger, "failed to list no-shows", err)
	}
	return converter.RentalsToDomain(rows), nil
}

func (r *RentalRepository) ListByBookingStatus(ctx context.Context, status rental.BookingStatus) ([]*rental.Rental, error) {
	rows, err := r.queries.ListRentalsByBookingStatus(ctx, r.db, status.String())
	if err != nil {
		return nil, wrap(r.logger, "failed to list rentals by status", err)
	}
	return converter.RentalsToDomain(rows), nil
}

func (r *RentalRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*rental.Rental, error) {
	rows, err := r.queries.ListRentalsByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, wrap(r.logger, "failed to list user rentals", err)
	}
	return converter.RentalsToDomain(rows), nil
}
