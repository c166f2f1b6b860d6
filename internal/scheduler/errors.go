// Package scheduler drives the periodic background sweep of the gateway.
package scheduler

import "errors"

var (
	ErrSchedulerAlreadyRunning = errors.New("scheduler is already running")
	ErrSchedulerNotRunning     = errors.New("scheduler is not running")
	ErrTaskPanicked            = errors.New("scheduled task panicked")
)
