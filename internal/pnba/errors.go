// Package pnba implements phone-number-based authentication sessions against a
// messaging platform provider.
package pnba

import (
	"errors"
	"fmt"
	"time"
)

// Kind is the caller-facing classification of a failed operation.
type Kind string

const (
	KindSessionAlreadyActive Kind = "session_already_active"
	KindRateLimited          Kind = "rate_limited"
	KindInvalidOrExpiredCode Kind = "invalid_or_expired_code"
	KindSecondFactorRequired Kind = "second_factor_required"
	KindInvalidSecondFactor  Kind = "invalid_second_factor"
	KindProviderTimeout      Kind = "provider_timeout"
	KindProviderUnavailable  Kind = "provider_unavailable"
	KindStateViolation       Kind = "state_violation"
	KindInvalidPhoneNumber   Kind = "invalid_phone_number"
	KindCanceled             Kind = "canceled"
)

// Error is the only error type returned by Session operations.
type Error struct {
	Kind Kind
	// RetryAfter is set for KindRateLimited when the platform named a cooldown.
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Err == nil
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// ErrSessionAlreadyActive is returned when a live session exists for the same number.
var ErrSessionAlreadyActive = &Error{Kind: KindSessionAlreadyActive}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}
