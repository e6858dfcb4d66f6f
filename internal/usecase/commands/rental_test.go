//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/domain/user"
	"vehicle-rental/internal/infra/idempotency"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/pkg/errs"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/shared"
	"vehicle-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalCommands_CreateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("prices and opens the rental", func(t *testing.T) {
		e := newEnv(t)
		v := e.registerVehicle(t, nil)
		userID := uuid.New()

		res, err := e.rentals.CreateRental(ctx, window(v, 24*time.Hour, 4), userID, "")
		require.NoError(t, err)

		assert.False(t, res.IsReplayed)
		assert.Equal(t, int64(2000), res.Rental.BaseCents)
		assert.Equal(t, int64(2000), res.Rental.TotalCents)
		assert.Equal(t, "PENDING", res.Rental.ApprovalStatus)
		assert.Equal(t, "REQUESTED", res.Rental.BookingStatus)
		assert.Equal(t, userID, res.Rental.UserID)
	})

	t.Run("rejects windows inside the handover buffer", func(t *testing.T) {
		e := newEnv(t)
		v := e.registerVehicle(t, nil)
		_, err := e.rentals.CreateRental(ctx, window(v, 24*time.Hour, 4), uuid.New(), "")
		require.NoError(t, err)

		// first rental ends at +28h; the next may start at +34h at the earliest
		_, err = e.rentals.CreateRental(ctx, window(v, 33*time.Hour, 4), uuid.New(), "")
		assert.ErrorIs(t, err, rental.ErrOverlappingRental)
		assert.ErrorIs(t, err, errs.ErrConflict)

		_, err = e.rentals.CreateRental(ctx, window(v, 34*time.Hour, 4), uuid.New(), "")
		assert.NoError(t, err)
	})

	t.Run("validation errors", func(t *testing.T) {
		e := newEnv(t)
		v := e.registerVehicle(t, nil)

		_, err := e.rentals.CreateRental(ctx, window(v, 24*time.Hour, 1), uuid.New(), "")
		assert.ErrorIs(t, err, errs.ErrValidation)
		_, err = e.rentals.CreateRental(ctx, window(v, 24*time.Hour, 73), uuid.New(), "")
		assert.ErrorIs(t, err, errs.ErrValidation)
		_, err = e.rentals.CreateRental(ctx, window(v, -time.Hour, 4), uuid.New(), "")
		assert.ErrorIs(t, err, rental.ErrStartInPast)
	})

	t.Run("unknown or deleted vehicle is not found", func(t *testing.T) {
		e := newEnv(t)
		v := e.registerVehicle(t, nil)
		require.NoError(t, e.vehicles.DeleteVehicle(ctx, v.Plate))

		_, err := e.rentals.CreateRental(ctx, window(v, 24*time.Hour, 4), uuid.New(), "")
		assert.ErrorIs(t, err, errs.ErrNotFound)

		req := window(v, 24*time.Hour, 4)
		req.VehicleID = uuid.New()
		_, err = e.rentals.CreateRental(ctx, req, uuid.New(), "")
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("concurrent identical requests book exactly once", func(t *testing.T) {
		e := newEnv(t)
		v := e.registerVehicle(t, nil)
		const callers = 16

		var wg sync.WaitGroup
		results := make(chan error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := e.rentals.CreateRental(ctx, window(v, 24*time.Hour, 4), uuid.New(), "")
				results <- err
			}()
		}
		wg.Wait()
		close(results)

		successes := 0
		for err := range results {
			if err == nil {
				successes++
				continue
			}
			assert.ErrorIs(t, err, errs.ErrConflict)
		}
		assert.Equal(t, 1, successes)
	})

	t.Run("windows colliding only through the buffer book exactly once", func(t *testing.T) {
		for round := 0; round < 20; round++ {
			e := newEnv(t)
			v := e.registerVehicle(t, nil)
			// +24h..+28h and +31h..+35h are disjoint but 3h apart
			reqs := []commands.CreateRentalRequest{
				window(v, 24*time.Hour, 4),
				window(v, 31*time.Hour, 4),
			}

			var wg sync.WaitGroup
			results := make(chan error, len(reqs))
			for _, req := range reqs {
				wg.Add(1)
				go func(req commands.CreateRentalRequest) {
					defer wg.Done()
					_, err := e.rentals.CreateRental(ctx, req, uuid.New(), "")
					results <- err
				}(req)
			}
			wg.Wait()
			close(results)

			successes := 0
			for err := range results {
				if err == nil {
					successes++
					continue
				}
				assert.ErrorIs(t, err, rental.ErrOverlappingRental)
			}
			require.Equal(t, 1, successes, "round %d", round)
		}
	})
}

func TestRentalCommands_Idempotency(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	v := e.registerVehicle(t, nil)
	userID := uuid.New()
	req := window(v, 24*time.Hour, 4)

	first, err := e.rentals.CreateRental(ctx, req, userID, "key-1")
	require.NoError(t, err)

	replay, err := e.rentals.CreateRental(ctx, req, userID, "key-1")
	require.NoError(t, err)
	assert.True(t, replay.IsReplayed)
	assert.Equal(t, first.Rental.ID, replay.Rental.ID)

	other := window(v, 96*time.Hour, 4)
	_, err = e.rentals.CreateRental(ctx, other, userID, "key-1")
	assert.ErrorIs(t, err, commands.ErrIdempotencyKeyReused)

	t.Run("failed request releases its key", func(t *testing.T) {
		bad := window(v, 25*time.Hour, 4)
		_, err := e.rentals.CreateRental(ctx, bad, userID, "key-2")
		require.ErrorIs(t, err, rental.ErrOverlappingRental)

		_, err = e.rentals.CreateRental(ctx, bad, userID, "key-2")
		assert.ErrorIs(t, err, rental.ErrOverlappingRental)
		assert.NotErrorIs(t, err, commands.ErrIdempotencyInProgress)
	})

	t.Run("replay after the rental has started", func(t *testing.T) {
		e.clock.Set(req.Start.Add(time.Hour))
		defer e.clock.Set(builder.FixedNow)

		late, err := e.rentals.CreateRental(ctx, req, userID, "key-1")
		require.NoError(t, err)
		assert.True(t, late.IsReplayed)
		assert.Equal(t, first.Rental.ID, late.Rental.ID)

		_, err = e.rentals.CreateRental(ctx, req, userID, "key-3")
		assert.ErrorIs(t, err, rental.ErrStartInPast)
	})
}

func TestRentalCommands_IdempotencyCancelledCaller(t *testing.T) {
	e := newEnvWithIdempotency(t, func(clk clock.Clock) commands.IdempotencyStore {
		return ctxBoundStore{MemoryStore: idempotency.NewMemoryStore(48*time.Hour, clk)}
	})
	v := e.registerVehicle(t, nil)
	userID := uuid.New()
	req := window(v, 24*time.Hour, 4)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.rentals.CreateRental(cancelled, req, userID, "key-gone")
	require.ErrorIs(t, err, context.Canceled)

	retry, err := e.rentals.CreateRental(context.Background(), req, userID, "key-gone")
	require.NoError(t, err)
	assert.False(t, retry.IsReplayed)

	replay, err := e.rentals.CreateRental(context.Background(), req, userID, "key-gone")
	require.NoError(t, err)
	assert.True(t, replay.IsReplayed)
	assert.Equal(t, retry.Rental.ID, replay.Rental.ID)
}

func TestRentalCommands_Lifecycle(t *testing.T) {
	ctx := context.Background()
	admin := shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}

	t.Run("review issue complete", func(t *testing.T) {
		e := newEnv(t)
		v := e.registerVehicle(t, nil)
		created, err := e.rentals.CreateRental(ctx, window(v, 24*time.Hour, 4), uuid.New(), "")
		require.NoError(t, err)
		id := created.Rental.ID

		_, err = e.rentals.IssueRental(ctx, id)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = e.rentals.ReviewRental(ctx, id, true, "")
		require.NoError(t, err)
		e.clock.Set(created.Rental.StartAt)
		issued, err := e.rentals.IssueRental(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "ACTIVE", issued.BookingStatus)

		_, err = e.rentals.IssueRental(ctx, id)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = e.rentals.CompleteRental(ctx, id, commands.CompleteRentalRequest{
			EndMileage: 11000, SurchargeCents: 0, PaymentMethod: "CASH",
		})
		assert.ErrorIs(t, err, errs.ErrValidation)

		done, err := e.rentals.CompleteRental(ctx, id, commands.CompleteRentalRequest{
			EndMileage: 12345.5, SurchargeCents: 750, PaymentMethod: "card",
		})
		require.NoError(t, err)
		assert.Equal(t, "COMPLETED", done.BookingStatus)
		assert.Equal(t, int64(2750), done.TotalCents)
		assert.Equal(t, "CARD", *done.PaymentMethod)

		fleet, err := e.reports.AllVehicles(ctx, false)
		require.NoError(t, err)
		require.Len(t, fleet, 1)
		assert.Equal(t, 12345.5, fleet[0].Mileage)

		_, err = e.rentals.CancelRental(ctx, admin, id, "")
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("negative surcharge", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.rentals.CompleteRental(ctx, uuid.New(), commands.CompleteRentalRequest{
			EndMileage: 1, SurchargeCents: -1, PaymentMethod: "CASH",
		})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("unknown rental", func(t *testing.T) {
		e := newEnv(t)
		_, err := e.rentals.ReviewRental(ctx, uuid.New(), true, "")
		assert.ErrorIs(t, err, rental.ErrRentalNotFound)
	})

	t.Run("cancel authority", func(t *testing.T) {
		e := newEnv(t)
		v := e.registerVehicle(t, nil)
		owner := shared.Actor{UserID: uuid.New(), Role: user.RoleMember}
		stranger := shared.Actor{UserID: uuid.New(), Role: user.RoleMember}
		created, err := e.rentals.CreateRental(ctx, window(v, 24*time.Hour, 4), owner.UserID, "")
		require.NoError(t, err)

		_, err = e.rentals.CancelRental(ctx, stranger, created.Rental.ID, "")
		assert.ErrorIs(t, err, errs.ErrForbidden)

		cancelled, err := e.rentals.CancelRental(ctx, owner, created.Rental.ID, "plans changed")
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", cancelled.BookingStatus)
		assert.Equal(t, "member", *cancelled.CancelledBy)
		assert.Equal(t, "plans changed", *cancelled.CancelReason)
		assert.Equal(t, builder.FixedNow, *cancelled.CancelledAt)

		// the window is free again
		_, err = e.rentals.CreateRental(ctx, window(v, 24*time.Hour, 4), stranger.UserID, "")
		assert.NoError(t, err)
	})
}
