package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/config"
	"github.com/popeskul/pnba-gateway/internal/models"
)

// ErrUnavailable is returned without calling the platform while the breaker rejects calls.
var ErrUnavailable = errors.New("provider unavailable")

// BreakerState mirrors the gobreaker state for health reporting.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerHalfOpen BreakerState = "half-open"
	BreakerOpen     BreakerState = "open"
)

// Breaker guards a Provider with a circuit breaker. Platform verdicts such as an
// invalid code are answers, not outages, and do not trip it.
type Breaker struct {
	next   Provider
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

func NewBreaker(next Provider, cfg *config.CircuitBreakerConfig, logger *zap.Logger) *Breaker {
	settings := gobreaker.Settings{
		Name:        next.Name() + "-provider-circuit-breaker",
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.ConsecutiveFails && failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: isSuccessful,
	}

	return &Breaker{
		next:   next,
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// callerVerdicts are platform answers about the caller's input. They prove the
// platform is up, so they do not count against it.
var callerVerdicts = map[Code]bool{
	CodeSessionExists:         true,
	CodeFloodWait:             true,
	CodePhoneCodeInvalid:      true,
	CodePhoneCodeExpired:      true,
	CodeSessionPasswordNeeded: true,
	CodePasswordHashInvalid:   true,
}

func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var providerErr *Error
	if errors.As(err, &providerErr) {
		return callerVerdicts[providerErr.Code]
	}
	return false
}

func (b *Breaker) Name() string {
	return b.next.Name()
}

func (b *Breaker) RequestCode(ctx context.Context, phone models.PhoneNumber) (*Ack, error) {
	return b.execute(ctx, func() (*Ack, error) { return b.next.RequestCode(ctx, phone) })
}

func (b *Breaker) SubmitCode(ctx context.Context, phone models.PhoneNumber, code string) (*Ack, error) {
	return b.execute(ctx, func() (*Ack, error) { return b.next.SubmitCode(ctx, phone, code) })
}

func (b *Breaker) SubmitSecondFactor(ctx context.Context, phone models.PhoneNumber, password string) (*Ack, error) {
	return b.execute(ctx, func() (*Ack, error) { return b.next.SubmitSecondFactor(ctx, phone, password) })
}

func (b *Breaker) Invalidate(ctx context.Context, phone models.PhoneNumber) (*Ack, error) {
	return b.execute(ctx, func() (*Ack, error) { return b.next.Invalidate(ctx, phone) })
}

func (b *Breaker) SendMessage(ctx context.Context, phone, recipient models.PhoneNumber, text string) (*Ack, error) {
	return b.execute(ctx, func() (*Ack, error) { return b.next.SendMessage(ctx, phone, recipient, text) })
}

func (b *Breaker) execute(ctx context.Context, fn func() (*Ack, error)) (*Ack, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			return fn()
		}
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			b.logger.Warn("Circuit breaker is open, request blocked", zap.String("platform", b.Name()))
			return nil, fmt.Errorf("%w: circuit breaker is open", ErrUnavailable)
		}
		if errors.Is(err, gobreaker.ErrTooManyRequests) {
			b.logger.Warn("Circuit breaker: too many requests", zap.String("platform", b.Name()))
			return nil, fmt.Errorf("%w: too many requests", ErrUnavailable)
		}
		return nil, err
	}

	ack, _ := result.(*Ack)
	return ack, nil
}

// State returns the current state of the circuit breaker.
func (b *Breaker) State() BreakerState {
	switch b.cb.State() {
	case gobreaker.StateHalfOpen:
		return BreakerHalfOpen
	case gobreaker.StateOpen:
		return BreakerOpen
	default:
		return BreakerClosed
	}
}

// Counts returns the request and failure counts of the current interval.
func (b *Breaker) Counts() (requests, failures uint32) {
	counts := b.cb.Counts()
	return counts.Requests, counts.TotalFailures
}
