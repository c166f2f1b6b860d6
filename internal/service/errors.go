package service

import "errors"

var (
	ErrUnknownPlatform      = errors.New("unknown platform")
	ErrSessionNotFound      = errors.New("no active session")
	ErrLockHeld             = errors.New("session lock is held elsewhere")
	ErrInvalidGatewayClient = errors.New("invalid gateway client")
	ErrGatewayClientExists  = errors.New("gateway client already registered")
)
