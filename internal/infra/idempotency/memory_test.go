//go:build unit

package idempotency_test

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/infra/idempotency"
	"vehicle-rental/internal/pkg/clock"
	"vehicle-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	store := idempotency.NewMemoryStore(time.Hour, clk)
	userID := uuid.New()

	existing, claimed, err := store.Reserve(ctx, "k1", userID, "hash")
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Nil(t, existing)

	existing, claimed, err = store.Reserve(ctx, "k1", userID, "hash")
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Equal(t, commands.IdempotencyStatusProcessing, existing.Status)

	t.Run("keys are scoped per user", func(t *testing.T) {
		_, claimed, err := store.Reserve(ctx, "k1", uuid.New(), "hash")
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	rentalID := uuid.New()
	require.NoError(t, store.Complete(ctx, "k1", userID, "hash", rentalID))
	existing, claimed, err = store.Reserve(ctx, "k1", userID, "hash")
	require.NoError(t, err)
	assert.False(t, claimed)
	assert.Equal(t, commands.IdempotencyStatusCompleted, existing.Status)
	assert.Equal(t, rentalID, *existing.RentalID)

	t.Run("expired keys can be claimed again", func(t *testing.T) {
		clk.Add(2 * time.Hour)
		_, claimed, err := store.Reserve(ctx, "k1", userID, "other")
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("release frees the key", func(t *testing.T) {
		require.NoError(t, store.Release(ctx, "k1", userID))
		_, claimed, err := store.Reserve(ctx, "k1", userID, "hash")
		require.NoError(t, err)
		assert.True(t, claimed)
	})
}
