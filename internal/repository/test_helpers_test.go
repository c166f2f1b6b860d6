package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/repository"
)

func insertGatewayClient(t *testing.T, db *sqlx.DB, msisdn, country string) *models.GatewayClient {
	t.Helper()

	client := &models.GatewayClient{
		MSISDN:       msisdn,
		Country:      country,
		Operator:     "Operator " + country,
		OperatorCode: "62401",
		Protocols:    pq.StringArray{"https", "smtp"},
	}
	require.NoError(t, repository.NewGatewayClientRepository(db).Create(context.Background(), client))

	return client
}

func setReliability(t *testing.T, db *sqlx.DB, msisdn string, score float64) {
	t.Helper()

	_, err := db.Exec(`UPDATE gateway_clients SET reliability = $2 WHERE msisdn = $1`, msisdn, score)
	require.NoError(t, err)
}

func insertTestWithStatus(t *testing.T, db *sqlx.DB, msisdn string, status models.TestStatus, start time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(
		`INSERT INTO reliability_tests (msisdn, status, start_time) VALUES ($1, $2, $3) RETURNING id`,
		msisdn, status, start.UTC(),
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func ptr[T any](v T) *T {
	return &v
}
