package pnba

import (
	"context"
	"errors"
	"net"

	"github.com/popeskul/pnba-gateway/internal/provider"
)

// classification maps platform failure signals to caller-facing kinds. It is the only
// place that knows the provider vocabulary.
var classification = map[provider.Code]Kind{
	provider.CodeSessionExists:         KindSessionAlreadyActive,
	provider.CodeFloodWait:             KindRateLimited,
	provider.CodePhoneCodeInvalid:      KindInvalidOrExpiredCode,
	provider.CodePhoneCodeExpired:      KindInvalidOrExpiredCode,
	provider.CodeSessionPasswordNeeded: KindSecondFactorRequired,
	provider.CodePasswordHashInvalid:   KindInvalidSecondFactor,
	provider.CodeRPC:                   KindProviderUnavailable,
}

// Classify translates an error returned by a Provider into an *Error.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case errors.Is(err, context.Canceled):
		return &Error{Kind: KindCanceled, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindProviderTimeout, Err: err}
	}

	var providerErr *provider.Error
	if errors.As(err, &providerErr) {
		kind, ok := classification[providerErr.Code]
		if !ok {
			kind = KindProviderUnavailable
		}
		e := &Error{Kind: kind, Err: err}
		if kind == KindRateLimited {
			e.RetryAfter = providerErr.RetryAfter
		}
		return e
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindProviderTimeout, Err: err}
	}

	return &Error{Kind: KindProviderUnavailable, Err: err}
}
