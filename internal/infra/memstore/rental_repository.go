package memstore

import (
	"bytes"
	"context"
	"slices"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/infra"

	"github.com/google/uuid"
)

type rentalRepository struct {
	tx *memTx
}

// Create enforces the buffered non-overlap rule itself, like the exclusion
// constraint does in PostgreSQL.
func (r *rentalRepository) Create(_ context.Context, rent *rental.Rental) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, exists := r.tx.state.rentals[rent.ID()]; exists {
		return infra.WrapRepoErr(r.tx.logger, infra.KindDuplicateKey, "rental already exists", nil)
	}
	if rent.IsBlocking() && r.overlapsBlocking(rent.VehicleID(), rent.Slot(), rent.ID()) {
		return infra.WrapRepoErr(r.tx.logger, infra.KindConflict, "rental window overlaps an existing rental", nil)
	}
	r.tx.state.rentals[rent.ID()] = rent.Snapshot()
	return nil
}

func (r *rentalRepository) FindByID(_ context.Context, id uuid.UUID) (*rental.Rental, error) {
	s, ok := r.tx.state.rentals[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "rental not found", nil)
	}
	return rental.Reconstruct(s), nil
}

func (r *rentalRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*rental.Rental, error) {
	return r.FindByID(ctx, id)
}

func (r *rentalRepository) Update(_ context.Context, rent *rental.Rental) error {
	if err := r.tx.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.tx.state.rentals[rent.ID()]; !ok {
		return infra.WrapRepoErr(r.tx.logger, infra.KindNotFound, "rental not found", nil)
	}
	r.tx.state.rentals[rent.ID()] = rent.Snapshot()
	return nil
}

func (r *rentalRepository) ConflictingVehicleIDs(_ context.Context, vehicleIDs []uuid.UUID, slot rental.TimeSlot) (map[uuid.UUID]struct{}, error) {
	wanted := make(map[uuid.UUID]struct{}, len(vehicleIDs))
	for _, id := range vehicleIDs {
		wanted[id] = struct{}{}
	}

	busy := map[uuid.UUID]struct{}{}
	for _, s := range r.tx.state.rentals {
		if _, ok := wanted[s.VehicleID]; !ok {
			continue
		}
		if blockingSlotConflicts(s, slot) {
			busy[s.VehicleID] = struct{}{}
		}
	}
	return busy, nil
}

func (r *rentalRepository) HasBlocking(_ context.Context, vehicleID uuid.UUID) (bool, error) {
	for _, s := range r.tx.state.rentals {
		if s.VehicleID == vehicleID && rental.IsBlocking(s.ApprovalStatus, s.BookingStatus) {
			return true, nil
		}
	}
	return false, nil
}

func (r *rentalRepository) ListNoShows(_ context.Context, now time.Time) ([]*rental.Rental, error) {
	return r.list(func(s rental.Snapshot) bool {
		return s.ApprovalStatus == rental.ApprovalApproved &&
			s.BookingStatus == rental.BookingRequested &&
			s.StartAt.Before(now)
	}), nil
}

func (r *rentalRepository) ListByBookingStatus(_ context.Context, status rental.BookingStatus) ([]*rental.Rental, error) {
	return r.list(func(s rental.Snapshot) bool {
		return s.BookingStatus == status
	}), nil
}

func (r *rentalRepository) ListByUserID(_ context.Context, userID uuid.UUID) ([]*rental.Rental, error) {
	return r.list(func(s rental.Snapshot) bool {
		return s.UserID == userID
	}), nil
}

func (r *rentalRepository) overlapsBlocking(vehicleID uuid.UUID, slot rental.TimeSlot, self uuid.UUID) bool {
	for id, s := range r.tx.state.rentals {
		if id != self && s.VehicleID == vehicleID && blockingSlotConflicts(s, slot) {
			return true
		}
	}
	return false
}

func blockingSlotConflicts(s rental.Snapshot, slot rental.TimeSlot) bool {
	if !rental.IsBlocking(s.ApprovalStatus, s.BookingStatus) {
		return false
	}
	existing, err := rental.WindowOf(s.StartAt, s.EndAt)
	if err != nil {
		return false
	}
	return slot.ConflictsWith(existing)
}

// list orders by start then id, matching the SQL driver.
func (r *rentalRepository) list(match func(rental.Snapshot) bool) []*rental.Rental {
	var out []*rental.Rental
	for _, s := range r.tx.state.rentals {
		if match(s) {
			out = append(out, rental.Reconstruct(s))
		}
	}
	slices.SortFunc(out, func(a, b *rental.Rental) int {
		if c := a.Slot().Start().Compare(b.Slot().Start()); c != 0 {
			return c
		}
		ida, idb := a.ID(), b.ID()
		return bytes.Compare(ida[:], idb[:])
	})
	return out
}
