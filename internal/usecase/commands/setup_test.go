//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/infra/idempotency"
	"vehicle-rental/internal/infra/memstore"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/internal/usecase/queries"
	"vehicle-rental/tests/common/builder"
	"vehicle-rental/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type env struct {
	clock    *clock.MockClock
	store    *memstore.Store
	rentals  commands.RentalCommands
	vehicles commands.VehicleCommands
	queries  queries.RentalQueries
	reports  queries.ReportQueries
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return newEnvWithIdempotency(t, func(clk clock.Clock) commands.IdempotencyStore {
		return idempotency.NewMemoryStore(48*time.Hour, clk)
	})
}

func newEnvWithIdempotency(t *testing.T, newStore func(clock.Clock) commands.IdempotencyStore) *env {
	t.Helper()
	logger := testutil.DiscardLogger()
	clk := clock.NewMockClock(builder.FixedNow)
	store := memstore.NewStore(2*time.Second, logger)
	rentalQueries := queries.NewRentalQueries(store)

	return &env{
		clock:   clk,
		store:   store,
		queries: rentalQueries,
		reports: queries.NewReportQueries(store, clk),
		rentals: commands.NewRentalUseCase(
			store,
			newStore(clk),
			rental.NewFactory(clk, rental.NewHourlyPriceCalculator()),
			rentalQueries,
			clk,
			logger,
		),
		vehicles: commands.NewVehicleUseCase(store, clk, logger),
	}
}

func (e *env) registerVehicle(t *testing.T, mutate func(*builder.VehicleBuilder)) *queries.VehicleView {
	t.Helper()
	b := builder.NewVehicleBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	view, err := e.vehicles.RegisterVehicle(context.Background(), b.Params())
	require.NoError(t, err)
	return view
}

// window returns a request for hours hours starting offset after FixedNow.
func window(v *queries.VehicleView, offset time.Duration, hours int) commands.CreateRentalRequest {
	start := builder.FixedNow.Add(offset)
	return commands.CreateRentalRequest{
		VehicleID: v.ID,
		Start:     start,
		End:       start.Add(time.Duration(hours) * time.Hour),
	}
}

// ctxBoundStore fails settlement calls on a done context the way a network
// backed store does.
type ctxBoundStore struct {
	*idempotency.MemoryStore
}

func (s ctxBoundStore) Complete(ctx context.Context, key string, userID uuid.UUID, requestHash string, rentalID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.MemoryStore.Complete(ctx, key, userID, requestHash, rentalID)
}

func (s ctxBoundStore) Release(ctx context.Context, key string, userID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.MemoryStore.Release(ctx, key, userID)
}
