package repository

import (
	"context"
	"time"

	"vehicle-rental/internal/infra/sqlc"

	"github.com/google/uuid"
)

//go:generate mockgen -source=queries.go -destination=../../../tests/mock/repository/queries.go -package=repository

type VehicleQueries interface {
	CreateVehicle(ctx context.Context, db sqlc.DBTX, arg sqlc.Vehicles) error
	GetVehicleByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
	GetVehicleByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Vehicles, error)
	GetVehicleByPlateForUpdate(ctx context.Context, db sqlc.DBTX, plate string) (sqlc.Vehicles, error)
	UpdateVehicle(ctx context.Context, db sqlc.DBTX, arg sqlc.Vehicles) (int64, error)
	ListEligibleVehicles(ctx context.Context, db sqlc.DBTX, vehicleType string) ([]sqlc.Vehicles, error)
	ListOverThresholdVehicles(ctx context.Context, db sqlc.DBTX) ([]sqlc.Vehicles, error)
	ListVehicles(ctx context.Context, db sqlc.DBTX, includeDeleted bool) ([]sqlc.Vehicles, error)
}

type RentalQueries interface {
	CreateRental(ctx context.Context, db sqlc.DBTX, arg sqlc.Rentals) error
	GetRentalByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rentals, error)
	GetRentalByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rentals, error)
	UpdateRental(ctx context.Context, db sqlc.DBTX, arg sqlc.Rentals) (int64, error)
	ConflictingVehicleIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ConflictingVehicleIDsParams) ([]uuid.UUID, error)
	HasBlockingRental(ctx context.Context, db sqlc.DBTX, vehicleID uuid.UUID) (bool, error)
	ListNoShowRentals(ctx context.Context, db sqlc.DBTX, now time.Time) ([]sqlc.Rentals, error)
	ListRentalsByBookingStatus(ctx context.Context, db sqlc.DBTX, status string) ([]sqlc.Rentals, error)
	ListRentalsByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Rentals, error)
}
