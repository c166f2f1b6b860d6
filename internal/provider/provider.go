// Package provider defines the capability the authentication sessions drive and the
// clients that implement it.
package provider

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/popeskul/pnba-gateway/internal/models"
)

// Provider is the out-of-band authentication capability of one messaging platform.
type Provider interface {
	Name() string
	RequestCode(ctx context.Context, phone models.PhoneNumber) (*Ack, error)
	SubmitCode(ctx context.Context, phone models.PhoneNumber, code string) (*Ack, error)
	SubmitSecondFactor(ctx context.Context, phone models.PhoneNumber, password string) (*Ack, error)
	Invalidate(ctx context.Context, phone models.PhoneNumber) (*Ack, error)
	SendMessage(ctx context.Context, phone, recipient models.PhoneNumber, text string) (*Ack, error)
}

// Ack is the platform's confirmation payload.
type Ack struct {
	Message   string         `json:"message,omitempty"`
	Reference string         `json:"reference,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// Code is a platform failure signal.
type Code string

const (
	CodeSessionExists         Code = "SESSION_EXISTS"
	CodeFloodWait             Code = "FLOOD_WAIT"
	CodePhoneCodeInvalid      Code = "PHONE_CODE_INVALID"
	CodePhoneCodeExpired      Code = "PHONE_CODE_EXPIRED"
	CodeSessionPasswordNeeded Code = "SESSION_PASSWORD_NEEDED"
	CodePasswordHashInvalid   Code = "PASSWORD_HASH_INVALID"
	CodeRPC                   Code = "RPC_ERROR"
)

// Error is a failure reported by the platform itself, as opposed to a transport error.
type Error struct {
	Code       Code
	Message    string
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s: %s (retry after %s)", e.Code, e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
