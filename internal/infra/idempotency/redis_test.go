//go:build e2e

package idempotency_test

import (
	"context"
	"net"
	"testing"
	"time"

	"vehicle-rental/internal/infra/idempotency"
	"vehicle-rental/internal/usecase/commands"
	"vehicle-rental/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: net.JoinHostPort(host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := startRedis(t)
	store := idempotency.NewRedisStore(client, time.Minute, testutil.DiscardLogger())
	userID := uuid.New()

	existing, claimed, err := store.Reserve(ctx, "k1", userID, "hash")
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Nil(t, existing)

	t.Run("second reserve sees the processing claim", func(t *testing.T) {
		existing, claimed, err := store.Reserve(ctx, "k1", userID, "other")
		require.NoError(t, err)
		assert.False(t, claimed)
		assert.Equal(t, commands.IdempotencyStatusProcessing, existing.Status)
		assert.Equal(t, "hash", existing.RequestHash)
	})

	t.Run("completion records the rental and keeps the ttl", func(t *testing.T) {
		rentalID := uuid.New()
		require.NoError(t, store.Complete(ctx, "k1", userID, "hash", rentalID))

		existing, claimed, err := store.Reserve(ctx, "k1", userID, "hash")
		require.NoError(t, err)
		assert.False(t, claimed)
		assert.Equal(t, commands.IdempotencyStatusCompleted, existing.Status)
		assert.Equal(t, rentalID, *existing.RentalID)

		keys, err := client.Keys(ctx, "*").Result()
		require.NoError(t, err)
		require.Len(t, keys, 1)
		ttl, err := client.TTL(ctx, keys[0]).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("release lets the key be claimed again", func(t *testing.T) {
		_, claimed, err := store.Reserve(ctx, "k2", userID, "hash")
		require.NoError(t, err)
		require.True(t, claimed)

		require.NoError(t, store.Release(ctx, "k2", userID))

		_, claimed, err = store.Reserve(ctx, "k2", userID, "hash")
		require.NoError(t, err)
		assert.True(t, claimed)
	})
}
