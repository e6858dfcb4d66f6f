package shared

import (
	"context"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/domain/vehicle"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: atomic read-write unit; either every write inside fn lands or none does
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot for multi-step reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Vehicles() VehicleRepository
	Rentals() RentalRepository
}

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	// FindByIDForUpdate serializes every writer touching the vehicle until the unit ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	FindByPlateForUpdate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
	Update(ctx context.Context, v *vehicle.Vehicle) error
	// ListEligible returns non-deleted vehicles of the type under their threshold, ordered by id.
	ListEligible(ctx context.Context, vehicleType vehicle.Type) ([]*vehicle.Vehicle, error)
	// ListOverThreshold includes deleted vehicles.
	ListOverThreshold(ctx context.Context) ([]*vehicle.Vehicle, error)
	ListAll(ctx context.Context, includeDeleted bool) ([]*vehicle.Vehicle, error)
}

type RentalRepository interface {
	Create(ctx context.Context, r *rental.Rental) error
	FindByID(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*rental.Rental, error)
	Update(ctx context.Context, r *rental.Rental) error
	// ConflictingVehicleIDs returns the subset of vehicleIDs holding a blocking
	// rental inside the buffered window of slot.
	ConflictingVehicleIDs(ctx context.Context, vehicleIDs []uuid.UUID, slot rental.TimeSlot) (map[uuid.UUID]struct{}, error)
	HasBlocking(ctx context.Context, vehicleID uuid.UUID) (bool, error)
	ListNoShows(ctx context.Context, now time.Time) ([]*rental.Rental, error)
	ListByBookingStatus(ctx context.Context, status rental.BookingStatus) ([]*rental.Rental, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*rental.Rental, error)
}
