package memstore

import (
	"bytes"
	"context"
	"slices"

	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"

	"github.com/google/uuid"
)

type vehicleRepository struct {
	tx *memTx
}

func (r *vehicleRepository) Create(_ context.Context, v *vehicle.Vehicle) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, exists := r.tx.state.plates[v.Plate()]; exists {
		return infra.WrapRepoErr(r.tx.logger, infra.KindDuplicateKey, "vehicle plate already exists", nil)
	}
	r.tx.state.vehicles[v.ID()] = v.Snapshot()
	r.tx.state.plates[v.Plate()] = v.ID()
	return nil
}

func (r *vehicleRepository) FindByID(_ context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	s, ok := r.tx.state.vehicles[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "vehicle not found", nil)
	}
	return vehicle.Reconstruct(s), nil
}

// FindByIDForUpdate needs no extra locking: a writer already holds the store exclusively.
func (r *vehicleRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	return r.FindByID(ctx, id)
}

func (r *vehicleRepository) FindByPlateForUpdate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	id, ok := r.tx.state.plates[plate]
	if !ok {
		return nil, infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "vehicle not found", nil)
	}
	return r.FindByID(ctx, id)
}

func (r *vehicleRepository) Update(_ context.Context, v *vehicle.Vehicle) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.state.vehicles[v.ID()]; !ok {
		return infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "vehicle not found", nil)
	}
	r.tx.state.vehicles[v.ID()] = v.Snapshot()
	return nil
}

func (r *vehicleRepository) ListEligible(_ context.Context, vehicleType vehicle.Type) ([]*vehicle.Vehicle, error) {
	return r.list(func(s vehicle.Snapshot) bool {
		return s.Type == vehicleType && !s.Deleted && s.Mileage < s.MileageThreshold
	}), nil
}

func (r *vehicleRepository) ListOverThreshold(_ context.Context) ([]*vehicle.Vehicle, error) {
	return r.list(func(s vehicle.Snapshot) bool {
		return s.Mileage >= s.MileageThreshold
	}), nil
}

func (r *vehicleRepository) ListAll(_ context.Context, includeDeleted bool) ([]*vehicle.Vehicle, error) {
	return r.list(func(s vehicle.Snapshot) bool {
		return includeDeleted || !s.Deleted
	}), nil
}

// list returns matches ordered by id, the same order the SQL driver uses.
func (r *vehicleRepository) list(match func(vehicle.Snapshot) bool) []*vehicle.Vehicle {
	var out []*vehicle.Vehicle
	for _, s := range r.tx.state.vehicles {
		if match(s) {
			out = append(out, vehicle.Reconstruct(s))
		}
	}
	slices.SortFunc(out, func(a, b *vehicle.Vehicle) int {
		ida, idb := a.ID(), b.ID()
		return bytes.Compare(ida[:], idb[:])
	})
	return out
}
