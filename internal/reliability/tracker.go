// Package reliability measures SMS delivery through gateway clients and keeps each
// client's reliability score current.
package reliability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/pnba"
	"github.com/popeskul/pnba-gateway/internal/repository"
)

// PublicationPlatform names reliability test publications.
const PublicationPlatform = "sms"

// Config bounds the scoring window. Zero values disable the matching bound.
type Config struct {
	WindowSize     int
	Window         time.Duration
	PendingTimeout time.Duration
}

// Tracker is the only writer of reliability tests and reliability scores.
type Tracker struct {
	clients   repository.GatewayClientRepository
	tests     repository.ReliabilityTestRepository
	publisher pnba.Publisher
	cfg       Config
	locks     *keyedMutex
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithPublisher records a publication for every test that reaches a terminal status.
func WithPublisher(p pnba.Publisher) Option {
	return func(t *Tracker) { t.publisher = p }
}

func NewTracker(repo repository.Repository, cfg Config, logger *zap.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		clients: repo.GatewayClient(),
		tests:   repo.ReliabilityTest(),
		cfg:     cfg,
		locks:   newKeyedMutex(),
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BeginTest starts a pending test for a registered gateway client.
func (t *Tracker) BeginTest(ctx context.Context, msisdn string) (*models.ReliabilityTest, error) {
	client, err := t.client(ctx, msisdn)
	if err != nil {
		return nil, err
	}

	return t.begin(ctx, client)
}

func (t *Tracker) begin(ctx context.Context, client *models.GatewayClient) (*models.ReliabilityTest, error) {
	test, err := t.tests.Create(ctx, client.MSISDN, t.now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGatewayClient, client.MSISDN)
		}
		return nil, fmt.Errorf("failed to begin reliability test: %w", err)
	}

	t.logger.Info("Reliability test started",
		zap.Int64("test_id", test.ID),
		zap.String("msisdn", test.MSISDN),
	)

	return test, nil
}

// RecordSent marks a pending test as handed to the gateway.
func (t *Tracker) RecordSent(ctx context.Context, id int64, at time.Time) (*models.ReliabilityTest, error) {
	return t.transition(ctx, id, models.TestTransition{
		From: []models.TestStatus{models.TestStatusPending},
		To:   models.TestStatusSent,
		At:   at,
	})
}

// RecordReceived marks a sent test as delivered to the receiving side.
func (t *Tracker) RecordReceived(ctx context.Context, id int64, at time.Time) (*models.ReliabilityTest, error) {
	return t.transition(ctx, id, models.TestTransition{
		From: []models.TestStatus{models.TestStatusSent},
		To:   models.TestStatusDelivered,
		At:   at,
	})
}

// RecordRouted closes a delivered test successfully.
func (t *Tracker) RecordRouted(ctx context.Context, id int64, at time.Time) (*models.ReliabilityTest, error) {
	return t.transition(ctx, id, models.TestTransition{
		From: []models.TestStatus{models.TestStatusDelivered},
		To:   models.TestStatusRouted,
		At:   at,
	})
}

// RecordFailure closes a non-terminal test as failed.
func (t *Tracker) RecordFailure(ctx context.Context, id int64, reason string) (*models.ReliabilityTest, error) {
	if reason == "" {
		reason = "unspecified failure"
	}
	return t.transition(ctx, id, models.TestTransition{
		From:   models.NonTerminalTestStatuses,
		To:     models.TestStatusFailed,
		Reason: reason,
	})
}

// RecordTimeout closes a non-terminal test as timed out.
func (t *Tracker) RecordTimeout(ctx context.Context, id int64) (*models.ReliabilityTest, error) {
	return t.transition(ctx, id, models.TestTransition{
		From:   models.NonTerminalTestStatuses,
		To:     models.TestStatusTimedOut,
		Reason: repository.ExpiredReason,
	})
}

// GetTest returns a reliability test by id.
func (t *Tracker) GetTest(ctx context.Context, id int64) (*models.ReliabilityTest, error) {
	test, err := t.tests.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrTestNotFound, id)
		}
		return nil, fmt.Errorf("failed to get reliability test: %w", err)
	}
	return test, nil
}

// RecomputeScore expires stale tests of msisdn and recomputes its score over the
// configured window. With nothing settled in the window the previous score is kept.
// Calls for the same msisdn are serialized.
func (t *Tracker) RecomputeScore(ctx context.Context, msisdn string) (*models.GatewayClient, error) {
	client, err := t.client(ctx, msisdn)
	if err != nil {
		return nil, err
	}

	unlock := t.locks.Lock(client.MSISDN)
	defer unlock()

	now := t.now().UTC()

	if t.cfg.PendingTimeout > 0 {
		expired, err := t.tests.ExpireStale(ctx, client.MSISDN, now.Add(-t.cfg.PendingTimeout))
		if err != nil {
			return nil, fmt.Errorf("failed to expire stale tests: %w", err)
		}
		if expired > 0 {
			t.logger.Info("Expired stale reliability tests",
				zap.String("msisdn", client.MSISDN),
				zap.Int64("count", expired),
			)
		}
	}

	var since time.Time
	if t.cfg.Window > 0 {
		since = now.Add(-t.cfg.Window)
	}

	tests, err := t.tests.ListForScoring(ctx, client.MSISDN, since, t.cfg.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load reliability tests: %w", err)
	}

	score, settled := Score(tests)
	if settled == 0 {
		score = client.Reliability
	}

	lastSent, err := t.tests.LatestSentTime(ctx, client.MSISDN)
	if err != nil {
		return nil, err
	}

	if err := t.clients.UpdateReliability(ctx, client.MSISDN, score, lastSent); err != nil {
		return nil, fmt.Errorf("failed to store reliability score: %w", err)
	}

	client.Reliability = score
	if lastSent.Valid {
		client.LastPublishedAt = lastSent
	}

	t.logger.Info("Reliability score recomputed",
		zap.String("msisdn", client.MSISDN),
		zap.Float64("score", score),
		zap.Int("settled_tests", settled),
	)

	return client, nil
}

// RecomputeAll recomputes every registered client and returns the joined failures.
func (t *Tracker) RecomputeAll(ctx context.Context) error {
	msisdns, err := t.clients.ListMSISDNs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list gateway clients: %w", err)
	}

	var errs []error
	for _, msisdn := range msisdns {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := t.RecomputeScore(ctx, msisdn); err != nil {
			t.logger.Error("Failed to recompute reliability score", zap.String("msisdn", msisdn), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", msisdn, err))
		}
	}

	return errors.Join(errs...)
}

// Measure starts a test for msisdn already marked as sent at sentAt. It returns a nil
// client without error when msisdn is not a registered gateway client.
func (t *Tracker) Measure(ctx context.Context, msisdn string, sentAt time.Time) (*models.GatewayClient, error) {
	client, err := t.client(ctx, msisdn)
	if err != nil {
		if errors.Is(err, ErrUnknownGatewayClient) {
			return nil, nil
		}
		return nil, err
	}

	test, err := t.begin(ctx, client)
	if err != nil {
		return nil, err
	}

	if _, err := t.RecordSent(ctx, test.ID, sentAt); err != nil {
		return nil, err
	}

	return client, nil
}

func (t *Tracker) client(ctx context.Context, msisdn string) (*models.GatewayClient, error) {
	phone, err := models.NormalizePhoneNumber(msisdn)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGatewayClient, msisdn)
	}

	client, err := t.clients.Get(ctx, phone.String())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGatewayClient, phone)
		}
		return nil, fmt.Errorf("failed to get gateway client: %w", err)
	}

	return client, nil
}

func (t *Tracker) transition(ctx context.Context, id int64, transition models.TestTransition) (*models.ReliabilityTest, error) {
	if transition.At.IsZero() {
		transition.At = t.now()
	}

	ok, err := t.tests.Transition(ctx, id, transition)
	if err != nil {
		return nil, fmt.Errorf("failed to record %s: %w", transition.To, err)
	}

	test, err := t.GetTest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ok {
		t.logger.Warn("Rejected reliability test transition",
			zap.Int64("test_id", id),
			zap.String("status", string(test.Status)),
			zap.String("target", string(transition.To)),
		)
		return nil, &TransitionError{TestID: id, Current: test.Status, Target: transition.To}
	}

	t.logger.Info("Reliability test transitioned",
		zap.Int64("test_id", id),
		zap.String("msisdn", test.MSISDN),
		zap.String("status", string(test.Status)),
	)

	if test.Status.IsTerminal() {
		t.publishResult(ctx, test)
	}

	return test, nil
}

func (t *Tracker) publishResult(ctx context.Context, test *models.ReliabilityTest) {
	if t.publisher == nil {
		return
	}

	entry := models.PublicationEntry{
		PlatformName:  PublicationPlatform,
		Source:        models.PublicationSourceReliability,
		Status:        models.PublicationStatusPublished,
		GatewayClient: test.MSISDN,
	}
	if !test.Reached() {
		entry.Status = models.PublicationStatusFailed
	}
	if client, err := t.clients.Get(ctx, test.MSISDN); err == nil {
		entry.CountryCode = client.Country
	}

	t.publisher.Record(entry)
}
