package queries

import (
	"context"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type SearchRequest struct {
	Type  string
	Start time.Time
	End   time.Time
}

type AvailabilityQueries interface {
	// Search lists vehicles that could be booked for the window right now, ordered by id.
	Search(ctx context.Context, req SearchRequest) ([]*VehicleView, error)
}

type availabilityQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAvailabilityQueries(uow shared.UnitOfWork, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{uow: uow, clock: clk}
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, req SearchRequest) ([]*VehicleView, error) {
	vehicleType, err := vehicle.ParseType(req.Type)
	if err != nil {
		return nil, err
	}
	slot, err := rental.NewTimeSlot(req.Start, req.End, q.clock.Now())
	if err != nil {
		return nil, err
	}
	hours := slot.BillableHours()

	var result []*VehicleView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		candidates, err := tx.Vehicles().ListEligible(ctx, vehicleType)
		if err != nil {
			return err
		}

		fitting := make([]*vehicle.Vehicle, 0, len(candidates))
		ids := make([]uuid.UUID, 0, len(candidates))
		for _, v := range candidates {
			if v.AcceptsDuration(hours) {
				fitting = append(fitting, v)
				ids = append(ids, v.ID())
			}
		}
		if len(fitting) == 0 {
			return nil
		}

		busy, err := tx.Rentals().ConflictingVehicleIDs(ctx, ids, slot)
		if err != nil {
			return err
		}

		for _, v := range fitting {
			if _, taken := busy[v.ID()]; !taken {
				result = append(result, ToVehicleView(v))
			}
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "search available vehicles")
	}
	if result == nil {
		result = []*VehicleView{}
	}
	return result, nil
}
