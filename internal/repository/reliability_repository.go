package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/popeskul/pnba-gateway/internal/models"
)

const reliabilityTestColumns = `id, msisdn, status, start_time, sms_sent_time, sms_received_time,
		sms_routed_time, failure_reason, updated_at`

// ExpiredReason is stored on tests closed by ExpireStale.
const ExpiredReason = "no delivery confirmation before timeout"

// timestampColumns maps a target status to the lifecycle column it stamps.
var timestampColumns = map[models.TestStatus]string{
	models.TestStatusSent:      "sms_sent_time",
	models.TestStatusDelivered: "sms_received_time",
	models.TestStatusRouted:    "sms_routed_time",
}

type reliabilityTestRepository struct {
	db *sqlx.DB
}

func NewReliabilityTestRepository(db *sqlx.DB) ReliabilityTestRepository {
	return &reliabilityTestRepository{
		db: db,
	}
}

// Create starts a new pending test for msisdn.
func (r *reliabilityTestRepository) Create(ctx context.Context, msisdn string, startTime time.Time) (*models.ReliabilityTest, error) {
	query := `
		INSERT INTO reliability_tests (msisdn, status, start_time, updated_at)
		VALUES ($1, $2, $3, $3)
		RETURNING ` + reliabilityTestColumns

	var test models.ReliabilityTest
	err := r.db.QueryRowxContext(ctx, query, msisdn, models.TestStatusPending, startTime.UTC()).StructScan(&test)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("gateway client %s: %w", msisdn, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create reliability test: %w", err)
	}

	return &test, nil
}

// Get retrieves a reliability test by id.
func (r *reliabilityTestRepository) Get(ctx context.Context, id int64) (*models.ReliabilityTest, error) {
	query := `SELECT ` + reliabilityTestColumns + ` FROM reliability_tests WHERE id = $1`

	var test models.ReliabilityTest
	if err := r.db.GetContext(ctx, &test, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reliability test %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get reliability test: %w", err)
	}

	return &test, nil
}

// Transition performs a compare-and-set on the test status. It reports false when the
// test does not exist or its status is not one of transition.From.
func (r *reliabilityTestRepository) Transition(ctx context.Context, id int64, transition models.TestTransition) (bool, error) {
	if len(transition.From) == 0 {
		return false, fmt.Errorf("transition to %s has no source status", transition.To)
	}

	from := make(pq.StringArray, 0, len(transition.From))
	for _, status := range transition.From {
		from = append(from, string(status))
	}

	at := transition.At.UTC()
	args := []any{id, transition.To, at, from}
	set := "status = $2, updated_at = $3"

	if column, ok := timestampColumns[transition.To]; ok {
		set += ", " + column + " = $3"
	}
	if transition.Reason != "" {
		args = append(args, transition.Reason)
		set += fmt.Sprintf(", failure_reason = $%d", len(args))
	}

	query := `UPDATE reliability_tests SET ` + set + ` WHERE id = $1 AND status = ANY($4)`

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to transition reliability test: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}

// ExpireStale times out the open tests of msisdn that started before the cutoff. A
// delivered test keeps its received time, so it still scores as reached.
func (r *reliabilityTestRepository) ExpireStale(ctx context.Context, msisdn string, before time.Time) (int64, error) {
	query := `
		UPDATE reliability_tests
		SET status = $3,
		    failure_reason = $4,
		    updated_at = NOW()
		WHERE msisdn = $1
		  AND start_time < $2
		  AND status IN ('pending', 'sent', 'delivered')
	`

	result, err := r.db.ExecContext(ctx, query, msisdn, before.UTC(), models.TestStatusTimedOut, ExpiredReason)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale reliability tests: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows, nil
}

// ListForScoring returns the newest tests for msisdn. A zero since or limit disables
// that bound.
func (r *reliabilityTestRepository) ListForScoring(ctx context.Context, msisdn string, since time.Time, limit int) ([]*models.ReliabilityTest, error) {
	query := `
		SELECT ` + reliabilityTestColumns + `
		FROM reliability_tests
		WHERE msisdn = $1
		  AND ($2::timestamptz IS NULL OR start_time >= $2)
		ORDER BY start_time DESC, id DESC
		LIMIT NULLIF($3::int, 0)
	`

	var sinceArg sql.NullTime
	if !since.IsZero() {
		sinceArg = sql.NullTime{Time: since.UTC(), Valid: true}
	}

	tests := []*models.ReliabilityTest{}
	if err := r.db.SelectContext(ctx, &tests, query, msisdn, sinceArg, limit); err != nil {
		return nil, fmt.Errorf("failed to list reliability tests: %w", err)
	}

	return tests, nil
}

// LatestSentTime returns the most recent sms_sent_time recorded for msisdn.
func (r *reliabilityTestRepository) LatestSentTime(ctx context.Context, msisdn string) (sql.NullTime, error) {
	var latest sql.NullTime
	query := `SELECT MAX(sms_sent_time) FROM reliability_tests WHERE msisdn = $1`

	if err := r.db.GetContext(ctx, &latest, query, msisdn); err != nil {
		return sql.NullTime{}, fmt.Errorf("failed to get latest sent time: %w", err)
	}

	return latest, nil
}
