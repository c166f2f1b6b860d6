package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/popeskul/pnba-gateway/internal/service"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	return client
}

func TestRedisLocker(t *testing.T) {
	client := setupRedis(t)
	locker := service.NewRedisLocker(client)
	ctx := context.Background()

	t.Run("second acquire is rejected", func(t *testing.T) {
		token, err := locker.Acquire(ctx, "telegram:+15550100", time.Minute)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		_, err = locker.Acquire(ctx, "telegram:+15550100", time.Minute)
		assert.ErrorIs(t, err, service.ErrLockHeld)

		require.NoError(t, locker.Release(ctx, "telegram:+15550100", token))

		token, err = locker.Acquire(ctx, "telegram:+15550100", time.Minute)
		require.NoError(t, err)
		require.NoError(t, locker.Release(ctx, "telegram:+15550100", token))
	})

	t.Run("keys are independent", func(t *testing.T) {
		a, err := locker.Acquire(ctx, "telegram:+15550101", time.Minute)
		require.NoError(t, err)
		b, err := locker.Acquire(ctx, "signal:+15550101", time.Minute)
		require.NoError(t, err)

		require.NoError(t, locker.Release(ctx, "telegram:+15550101", a))
		require.NoError(t, locker.Release(ctx, "signal:+15550101", b))
	})

	t.Run("foreign token cannot release or refresh", func(t *testing.T) {
		token, err := locker.Acquire(ctx, "telegram:+15550102", time.Minute)
		require.NoError(t, err)

		require.NoError(t, locker.Release(ctx, "telegram:+15550102", "someone-else"))
		_, err = locker.Acquire(ctx, "telegram:+15550102", time.Minute)
		assert.ErrorIs(t, err, service.ErrLockHeld)

		err = locker.Refresh(ctx, "telegram:+15550102", "someone-else", time.Minute)
		assert.ErrorIs(t, err, service.ErrLockHeld)

		require.NoError(t, locker.Release(ctx, "telegram:+15550102", token))
	})

	t.Run("refresh extends the lock", func(t *testing.T) {
		token, err := locker.Acquire(ctx, "telegram:+15550103", time.Second)
		require.NoError(t, err)

		require.NoError(t, locker.Refresh(ctx, "telegram:+15550103", token, time.Hour))

		ttl, err := client.PTTL(ctx, "pnba:session:telegram:+15550103").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Minute)

		require.NoError(t, locker.Release(ctx, "telegram:+15550103", token))
	})

	t.Run("lock expires with its ttl", func(t *testing.T) {
		_, err := locker.Acquire(ctx, "telegram:+15550104", 100*time.Millisecond)
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			_, err := locker.Acquire(ctx, "telegram:+15550104", time.Minute)
			return err == nil
		}, 2*time.Second, 50*time.Millisecond)
	})
}
