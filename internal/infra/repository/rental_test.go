//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vehicle-rental/internal/domain/rental"
	"vehicle-rental/internal/infra"
	"vehicle-rental/internal/infra/repository"
	"vehicle-rental/internal/infra/repository/converter"
	"vehicle-rental/internal/infra/sqlc"
	"vehicle-rental/tests/common/builder"
	"vehicle-rental/tests/common/testutil"
	repositorymock "vehicle-rental/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Rental Tests
// =============================================================================

func TestRentalRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRentalQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rental created",
			setupMock: func(mock *repositorymock.MockRentalQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateRental(ctx, tx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "error: exclusion constraint rejects overlap",
			setupMock: func(mock *repositorymock.MockRentalQueries, tx sqlc.DBTX) {
				overlap := &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateRental(ctx, tx, gomock.Any()).Return(overlap)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: serialization failure",
			setupMock: func(mock *repositorymock.MockRentalQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateRental(ctx, tx, gomock.Any()).Return(&pgconn.PgError{Code: "40001"})
			},
			expectedError: true,
			expectKind:    infra.KindStorageConflict,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRentalQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateRental(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRentalRepository(mockQueries, mockDB, testutil.DiscardLogger())

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, builder.NewRentalBuilder().MustBuildDomain())

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Find Rental Tests
// =============================================================================

func TestRentalRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	active := builder.NewRentalBuilder().MustBuildActive()
	completed := builder.NewRentalBuilder().MustBuildActive()
	surcharge, err := rental.NewMoney(750)
	require.NoError(t, err)
	require.NoError(t, completed.Complete(13000, surcharge, rental.PaymentCard, builder.FixedNow.Add(48*time.Hour)))

	testCases := []struct {
		name string
		in   *rental.Rental
	}{
		{name: "success: active rental round trips", in: active},
		{name: "success: completed rental keeps nullable columns", in: completed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRentalRepository(mockQueries, mockDB, testutil.DiscardLogger())

			mockQueries.EXPECT().GetRentalByID(ctx, mockDB, tc.in.ID()).Return(converter.RentalToInfra(tc.in), nil)

			got, err := repo.FindByID(ctx, tc.in.ID())

			require.NoError(t, err)
			if diff := cmp.Diff(tc.in.Snapshot(), got.Snapshot()); diff != "" {
				t.Errorf("rental mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("error: rental not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockRentalQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRentalRepository(mockQueries, mockDB, testutil.DiscardLogger())

		id := uuid.New()
		mockQueries.EXPECT().GetRentalByID(ctx, mockDB, id).Return(sqlc.Rentals{}, pgx.ErrNoRows)

		got, err := repo.FindByID(ctx, id)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, got)
	})
}

// =============================================================================
// Update Rental Tests
// =============================================================================

func TestRentalRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRentalQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rental updated",
			setupMock: func(mock *repositorymock.MockRentalQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateRental(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "error: rental not found",
			setupMock: func(mock *repositorymock.MockRentalQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateRental(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: deadlock detected",
			setupMock: func(mock *repositorymock.MockRentalQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateRental(ctx, tx, gomock.Any()).Return(int64(0), &pgconn.PgError{Code: "40P01"})
			},
			expectedError: true,
			expectKind:    infra.KindStorageConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRentalQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRentalRepository(mockQueries, mockDB, testutil.DiscardLogger())

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Update(ctx, builder.NewRentalBuilder().MustBuildDomain())

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// Overlap Query Tests
// =============================================================================

func TestRentalRepository_ConflictingVehicleIDs(t *testing.T) {
	ctx := context.Background()

	start := builder.FixedNow.Add(24 * time.Hour)
	slot, err := rental.NewTimeSlot(start, start.Add(4*time.Hour), builder.FixedNow)
	require.NoError(t, err)

	t.Run("success: queries the buffered window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockRentalQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRentalRepository(mockQueries, mockDB, testutil.DiscardLogger())

		busyID, freeID := uuid.New(), uuid.New()
		want := sqlc.ConflictingVehicleIDsParams{
			VehicleIDs: []string{busyID.String(), freeID.String()},
			From:       start.Add(-rental.HandoverBuffer),
			To:         start.Add(4*time.Hour + rental.HandoverBuffer),
		}
		mockQueries.EXPECT().ConflictingVehicleIDs(ctx, mockDB, want).Return([]uuid.UUID{busyID}, nil)

		got, err := repo.ConflictingVehicleIDs(ctx, []uuid.UUID{busyID, freeID}, slot)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Contains(t, got, busyID)
		assert.NotContains(t, got, freeID)
	})

	t.Run("success: empty candidate list skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository.NewRentalRepository(repositorymock.NewMockRentalQueries(ctrl), &mockDBTX{}, testutil.DiscardLogger())

		got, err := repo.ConflictingVehicleIDs(ctx, nil, slot)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
