package repository_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/repository"
)

func TestReliabilityTestRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewReliabilityTestRepository(db)
	msisdn := "+237650000001"
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Create and Get", func(t *testing.T) {
		cleanupTestData(db)
		insertGatewayClient(t, db, msisdn, "Cameroon")

		created, err := repo.Create(ctx, msisdn, start)
		require.NoError(t, err)
		assert.Equal(t, models.TestStatusPending, created.Status)
		assert.True(t, start.Equal(created.StartTime))

		got, err := repo.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.False(t, got.SMSSentTime.Valid)
	})

	t.Run("Create for unknown client", func(t *testing.T) {
		cleanupTestData(db)

		_, err := repo.Create(ctx, "+10000000000", start)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Get unknown", func(t *testing.T) {
		cleanupTestData(db)

		_, err := repo.Get(ctx, 42)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Transition stamps lifecycle columns", func(t *testing.T) {
		cleanupTestData(db)
		insertGatewayClient(t, db, msisdn, "Cameroon")
		test, err := repo.Create(ctx, msisdn, start)
		require.NoError(t, err)

		steps := []struct {
			from []models.TestStatus
			to   models.TestStatus
		}{
			{from: []models.TestStatus{models.TestStatusPending}, to: models.TestStatusSent},
			{from: []models.TestStatus{models.TestStatusSent}, to: models.TestStatusDelivered},
			{from: []models.TestStatus{models.TestStatusDelivered}, to: models.TestStatusRouted},
		}
		for i, step := range steps {
			ok, err := repo.Transition(ctx, test.ID, models.TestTransition{
				From: step.from,
				To:   step.to,
				At:   start.Add(time.Duration(i+1) * time.Minute),
			})
			require.NoError(t, err)
			require.True(t, ok, "step %s", step.to)
		}

		got, err := repo.Get(ctx, test.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TestStatusRouted, got.Status)
		assert.True(t, start.Add(time.Minute).Equal(got.SMSSentTime.Time))
		assert.True(t, start.Add(2*time.Minute).Equal(got.SMSReceivedTime.Time))
		assert.True(t, start.Add(3*time.Minute).Equal(got.SMSRoutedTime.Time))
	})

	t.Run("Transition refused from wrong status", func(t *testing.T) {
		cleanupTestData(db)
		insertGatewayClient(t, db, msisdn, "Cameroon")
		id := insertTestWithStatus(t, db, msisdn, models.TestStatusFailed, start)

		ok, err := repo.Transition(ctx, id, models.TestTransition{
			From: []models.TestStatus{models.TestStatusPending},
			To:   models.TestStatusSent,
			At:   start,
		})
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = repo.Transition(ctx, 9999, models.TestTransition{
			From: []models.TestStatus{models.TestStatusPending},
			To:   models.TestStatusSent,
			At:   start,
		})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Transition stores failure reason", func(t *testing.T) {
		cleanupTestData(db)
		insertGatewayClient(t, db, msisdn, "Cameroon")
		id := insertTestWithStatus(t, db, msisdn, models.TestStatusSent, start)

		ok, err := repo.Transition(ctx, id, models.TestTransition{
			From:   models.NonTerminalTestStatuses,
			To:     models.TestStatusFailed,
			At:     start,
			Reason: "carrier rejected",
		})
		require.NoError(t, err)
		require.True(t, ok)

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.TestStatusFailed, got.Status)
		assert.Equal(t, "carrier rejected", got.FailureReason.String)
	})

	t.Run("Concurrent transitions have one winner", func(t *testing.T) {
		cleanupTestData(db)
		insertGatewayClient(t, db, msisdn, "Cameroon")
		id := insertTestWithStatus(t, db, msisdn, models.TestStatusDelivered, start)

		var (
			wg   sync.WaitGroup
			wins atomic.Int32
		)
		targets := []models.TestStatus{models.TestStatusRouted, models.TestStatusFailed, models.TestStatusTimedOut, models.TestStatusRouted}
		for _, to := range targets {
			wg.Add(1)
			go func(to models.TestStatus) {
				defer wg.Done()
				ok, err := repo.Transition(ctx, id, models.TestTransition{
					From: []models.TestStatus{models.TestStatusDelivered},
					To:   to,
					At:   start,
				})
				assert.NoError(t, err)
				if ok {
					wins.Add(1)
				}
			}(to)
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, got.Status.IsTerminal())
	})

	t.Run("ExpireStale only touches old open tests", func(t *testing.T) {
		cleanupTestData(db)
		insertGatewayClient(t, db, msisdn, "Cameroon")
		oldPending := insertTestWithStatus(t, db, msisdn, models.TestStatusPending, start)
		oldSent := insertTestWithStatus(t, db, msisdn, models.TestStatusSent, start)
		oldDelivered := insertTestWithStatus(t, db, msisdn, models.TestStatusDelivered, start)
		fresh := insertTestWithStatus(t, db, msisdn, models.TestStatusPending, start.Add(time.Hour))

		n, err := repo.ExpireStale(ctx, msisdn, start.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		expected := map[int64]models.TestStatus{
			oldPending:   models.TestStatusTimedOut,
			oldSent:      models.TestStatusTimedOut,
			oldDelivered: models.TestStatusTimedOut,
			fresh:        models.TestStatusPending,
		}
		for id, status := range expected {
			got, err := repo.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, status, got.Status, "test %d", id)
		}
	})

	t.Run("ListForScoring honours window bounds", func(t *testing.T) {
		cleanupTestData(db)
		insertGatewayClient(t, db, msisdn, "Cameroon")
		for i := 0; i < 5; i++ {
			insertTestWithStatus(t, db, msisdn, models.TestStatusRouted, start.Add(time.Duration(i)*24*time.Hour))
		}

		all, err := repo.ListForScoring(ctx, msisdn, time.Time{}, 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)
		assert.True(t, all[0].StartTime.After(all[4].StartTime))

		limited, err := repo.ListForScoring(ctx, msisdn, time.Time{}, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		recent, err := repo.ListForScoring(ctx, msisdn, start.Add(3*24*time.Hour), 0)
		require.NoError(t, err)
		assert.Len(t, recent, 2)
	})

	t.Run("LatestSentTime", func(t *testing.T) {
		cleanupTestData(db)
		insertGatewayClient(t, db, msisdn, "Cameroon")

		latest, err := repo.LatestSentTime(ctx, msisdn)
		require.NoError(t, err)
		assert.False(t, latest.Valid)

		test, err := repo.Create(ctx, msisdn, start)
		require.NoError(t, err)
		_, err = repo.Transition(ctx, test.ID, models.TestTransition{
			From: []models.TestStatus{models.TestStatusPending},
			To:   models.TestStatusSent,
			At:   start.Add(time.Minute),
		})
		require.NoError(t, err)

		latest, err = repo.LatestSentTime(ctx, msisdn)
		require.NoError(t, err)
		require.True(t, latest.Valid)
		assert.True(t, start.Add(time.Minute).Equal(latest.Time))
	})
}
