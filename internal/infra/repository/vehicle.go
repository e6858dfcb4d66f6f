package repository

import (
	"context"
	"log/slog"

	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/repository/converter"
	"vehicle-rental/internal/infra/sqlc"

	"github.com/google/uuid"
)

type VehicleRepository struct {
	queries VehicleQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewVehicleRepository(queries VehicleQueries, db sqlc.DBTX, logger *slog.Logger) *VehicleRepository {
	return &VehicleRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	if err := r.queries.CreateVehicle(ctx, r.db, converter.VehicleToInfra(v)); err != nil {
		return wrap(r.logger, "failed to create vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row, err := r.queries.GetVehicleByID(ctx, r.db, id)
	if err != nil {
		return nil, wrap(r.logger, "failed to find vehicle", err)
	}
	return converter.VehicleToDomain(row), nil
}

func (r *VehicleRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	row, err := r.queries.GetVehicleByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, wrap(r.logger, "failed to lock vehicle", err)
	}
	return converter.VehicleToDomain(row), nil
}

func (r *VehicleRepository) FindByPlateForUpdate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	row, err := r.queries.GetVehicleByPlateForUpdate(ctx, r.db, plate)
	if err != nil {
		return nil, wrap(r.logger, "failed to lock vehicle by plate", err)
	}
	return converter.VehicleToDomain(row), nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	affected, err := r.queries.UpdateVehicle(ctx, r.db, converter.VehicleToInfra(v))
	if err != nil {
		return wrap(r.logger, "failed to update vehicle", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "vehicle not found", nil)
	}
	return nil
}

func (r *VehicleRepository) ListEligible(ctx context.Context, vehicleType vehicle.Type) ([]*vehicle.Vehicle, error) {
	rows, err := r.queries.ListEligibleVehicles(ctx, r.db, vehicleType.String())
	if err != nil {
		return nil, wrap(r.logger, "failed to list eligible vehicles", err)
	}
	return converter.VehiclesToDomain(rows), nil
}

func (r *VehicleRepository) ListOverThreshold(ctx context.Context) ([]*vehicle.Vehicle, error) {
	rows, err := r.queries.ListOverThresholdVehicles(ctx, r.db)
	if err != nil {
		return nil, wrap(r.logger, "failed to list over-threshold vehicles", err)
	}
	return converter.VehiclesToDomain(rows), nil
}

func (r *VehicleRepository) ListAll(ctx context.Context, includeDeleted bool) ([]*vehicle.Vehicle, error) {
	rows, err := r.queries.ListVehicles(ctx, r.db, includeDeleted)
	if err != nil {
		return nil, wrap(r.logger, "failed to list vehicles", err)
	}
	return converter.VehiclesToDomain(rows), nil
}
