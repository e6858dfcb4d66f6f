package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/domain/vehicle"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

type CompleteRentalRequest struct {
	EndMileage     float64
	SurchargeCents int64
	PaymentMethod  string
}

type CreateRentalResult struct {
	Rental     *queries.RentalView
	IsReplayed bool
}

type RentalCommands interface {
	// CreateRental books a vehicle for the caller. idempotencyKey is optional.
	CreateRental(ctx context.Context, req CreateRentalRequest, userID uuid.UUID, idempotencyKey string) (*CreateRentalResult, error)
	ReviewRental(ctx context.Context, rentalID uuid.UUID, approve bool, reason string) (*queries.RentalView, error)
	IssueRental(ctx context.Context, rentalID uuid.UUID) (*queries.RentalView, error)
	CompleteRental(ctx context.Context, rentalID uuid.UUID, req CompleteRentalRequest) (*queries.RentalView, error)
	CancelRental(ctx context.Context, actor shared.Actor, rentalID uuid.UUID, reason string) (*queries.RentalView, error)
}

type rentalUseCaseImpl struct {
	uow           shared.UnitOfWork
	idempotency   IdempotencyStore
	rentalFactory *rental.Factory
	rentalQueries queries.RentalQueries
	clock         clock.Clock
	logger        *slog.Logger
}

func NewRentalUseCase(
	uow shared.UnitOfWork,
	idempotency IdempotencyStore,
	rentalFactory *rental.Factory,
	rentalQueries queries.RentalQueries,
	clk clock.Clock,
	logger *slog.Logger,
) RentalCommands {
	return &rentalUseCaseImpl{
		uow:           uow,
		idempotency:   idempotency,
		rentalFactory: rentalFactory,
		rentalQueries: rentalQueries,
		clock:         clk,
		logger:        logger,
	}
}

func (uc *rentalUseCaseImpl) CreateRental(
	ctx context.Context,
	req CreateRentalRequest,
	userID uuid.UUID,
	idempotencyKey string,
) (*CreateRentalResult, error) {
	if idempotencyKey == "" {
		slot, err := rental.NewTimeSlot(req.Start, req.End, uc.clock.Now())
		if err != nil {
			return nil, err
		}
		view, err := uc.createNewRental(ctx, req.VehicleID, userID, slot)
		if err != nil {
			return nil, err
		}
		return &CreateRentalResult{Rental: view}, nil
	}

	// A replay is answered before the window is checked against the clock:
	// the stored rental may already have started.
	requestHash := calculateRequestHash(req)
	replayed, err := uc.handleIdempotency(ctx, idempotencyKey, userID, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &CreateRentalResult{Rental: replayed, IsReplayed: true}, nil
	}

	// The claim must be settled even when the caller has gone away.
	settleCtx := context.WithoutCancel(ctx)

	view, err := uc.createClaimedRental(ctx, req, userID)
	if err != nil {
		if releaseErr := uc.idempotency.Release(settleCtx, idempotencyKey, userID); releaseErr != nil {
			uc.logger.Warn("failed to release idempotency key", "error", releaseErr)
		}
		return nil, err
	}

	if err := uc.idempotency.Complete(settleCtx, idempotencyKey, userID, requestHash, view.ID); err != nil {
		// the rental exists; a replay will fall back to processing until the key expires
		uc.logger.Error("failed to complete idempotency key", "rental_id", view.ID, "error", err)
	}
	return &CreateRentalResult{Rental: view}, nil
}

func (uc *rentalUseCaseImpl) createClaimedRental(ctx context.Context, req CreateRentalRequest, userID uuid.UUID) (*queries.RentalView, error) {
	slot, err := rental.NewTimeSlot(req.Start, req.End, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	return uc.createNewRental(ctx, req.VehicleID, userID, slot)
}

func (uc *rentalUseCaseImpl) handleIdempotency(
	ctx context.Context,
	key string,
	userID uuid.UUID,
	requestHash string,
) (*queries.RentalView, error) {
	existing, claimed, err := uc.idempotency.Reserve(ctx, key, userID, requestHash)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if claimed {
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case IdempotencyStatusCompleted:
		if existing.RentalID == nil {
			return nil, errs.New("completed request missing result rental ID")
		}
		return uc.rentalQueries.GetByIDSystem(ctx, *existing.RentalID)
	case IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

// createNewRental holds the vehicle's row lock across the overlap check and
// the insert so two bookings for one vehicle cannot interleave.
func (uc *rentalUseCaseImpl) createNewRental(
	ctx context.Context,
	vehicleID, userID uuid.UUID,
	slot rental.TimeSlot,
) (*queries.RentalView, error) {
	var created *rental.Rental
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().FindByIDForUpdate(ctx, vehicleID)
		if err != nil {
			return translate(err, infra.KindNotFound, vehicle.ErrVehicleNotFound)
		}

		r, err := uc.rentalFactory.CreateRental(v, userID, slot)
		if err != nil {
			return err
		}

		busy, err := tx.Rentals().ConflictingVehicleIDs(ctx, []uuid.UUID{v.ID()}, slot)
		if err != nil {
			return err
		}
		if _, taken := busy[v.ID()]; taken {
			return rental.ErrOverlappingRental
		}

		if err := tx.Rentals().Create(ctx, r); err != nil {
			return translate(err, infra.KindConflict, rental.ErrOverlappingRental)
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("rental created",
		"rental_id", created.ID(),
		"vehicle_id", created.VehicleID(),
		"user_id", created.UserID(),
		"base_cents", created.Base().Cents())
	return queries.ToRentalView(created), nil
}

func (uc *rentalUseCaseImpl) ReviewRental(ctx context.Context, rentalID uuid.UUID, approve bool, reason string) (*queries.RentalView, error) {
	return uc.transition(ctx, rentalID, "review", func(r *rental.Rental) error {
		return r.Review(approve, reason, uc.clock.Now())
	})
}

func (uc *rentalUseCaseImpl) IssueRental(ctx context.Context, rentalID uuid.UUID) (*queries.RentalView, error) {
	return uc.transition(ctx, rentalID, "issue", func(r *rental.Rental) error {
		return r.Issue(uc.clock.Now())
	})
}

func (uc *rentalUseCaseImpl) CancelRental(ctx context.Context, actor shared.Actor, rentalID uuid.UUID, reason string) (*queries.RentalView, error) {
	return uc.transition(ctx, rentalID, "cancel", func(r *rental.Rental) error {
		if !actor.IsAdmin() && !r.IsOwnedBy(actor.UserID) {
			return rental.ErrNotOwner
		}
		return r.Cancel(actor.Tag(), reason, uc.clock.Now())
	})
}

// CompleteRental advances the vehicle's mileage in the same unit as the
// rental. The vehicle is locked before the rental to keep one lock order
// with creation.
func (uc *rentalUseCaseImpl) CompleteRental(ctx context.Context, rentalID uuid.UUID, req CompleteRentalRequest) (*queries.RentalView, error) {
	surcharge, err := rental.NewMoney(req.SurchargeCents)
	if err != nil {
		return nil, err
	}
	method, err := rental.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var completed *rental.Rental
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Rentals().FindByID(ctx, rentalID)
		if err != nil {
			return translate(err, infra.KindNotFound, rental.ErrRentalNotFound)
		}

		v, err := tx.Vehicles().FindByIDForUpdate(ctx, current.VehicleID())
		if err != nil {
			return translate(err, infra.KindNotFound, vehicle.ErrVehicleNotFound)
		}
		r, err := tx.Rentals().FindByIDForUpdate(ctx, rentalID)
		if err != nil {
			return translate(err, infra.KindNotFound, rental.ErrRentalNotFound)
		}

		now := uc.clock.Now()
		if err := r.Complete(req.EndMileage, surcharge, method, now); err != nil {
			return err
		}
		if err := v.RecordMileage(req.EndMileage, now); err != nil {
			return err
		}

		if err := tx.Vehicles().Update(ctx, v); err != nil {
			return err
		}
		if err := tx.Rentals().Update(ctx, r); err != nil {
			return err
		}
		completed = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("rental completed",
		"rental_id", completed.ID(),
		"total_cents", completed.Total().Cents(),
		"ending_mileage", req.EndMileage)
	return queries.ToRentalView(completed), nil
}

func (uc *rentalUseCaseImpl) transition(
	ctx context.Context,
	rentalID uuid.UUID,
	event string,
	apply func(r *rental.Rental) error,
) (*queries.RentalView, error) {
	var updated *rental.Rental
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rentals().FindByIDForUpdate(ctx, rentalID)
		if err != nil {
			return translate(err, infra.KindNotFound, rental.ErrRentalNotFound)
		}
		if err := apply(r); err != nil {
			return err
		}
		if err := tx.Rentals().Update(ctx, r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("rental "+event,
		"rental_id", updated.ID(),
		"approval_status", updated.ApprovalStatus(),
		"booking_status", updated.BookingStatus())
	return queries.ToRentalView(updated), nil
}

func calculateRequestHash(req CreateRentalRequest) string {
	req.Start = req.Start.UTC()
	req.End = req.End.UTC()
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
