package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is one unit of periodic work. Its context expires before the next tick.
type Task func(ctx context.Context) error

// Status is a snapshot of a scheduler.
type Status struct {
	Running bool
	Runs    int
	// Failures counts consecutive failed runs and resets on success.
	Failures int
	LastRun  time.Time
	LastErr  error
}

// Scheduler runs one Task on a fixed interval, the first run right after Start.
// A panicking task is logged and counted as a failed run.
type Scheduler struct {
	logger   *zap.Logger
	name     string
	interval time.Duration
	task     Task

	mu     sync.RWMutex
	status Status
	stopCh chan struct{}
	doneCh chan struct{}
}

func NewScheduler(logger *zap.Logger, name string, interval time.Duration, task Task) *Scheduler {
	return &Scheduler{
		logger:   logger.With(zap.String("task", name)),
		name:     name,
		interval: interval,
		task:     task,
	}
}

func (s *Scheduler) Name() string {
	return s.name
}

// Start launches the loop. It stops on Stop or when ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.Running {
		return ErrSchedulerAlreadyRunning
	}

	s.status.Running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	go s.loop(ctx, s.stopCh, s.doneCh)

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop signals the loop and waits for an in-flight run to return.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.status.Running {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.stopCh = nil
	s.mu.Unlock()

	if stopCh == nil {
		return ErrSchedulerNotRunning
	}
	close(stopCh)
	<-doneCh

	s.logger.Info("Scheduler stopped")
	return nil
}

func (s *Scheduler) IsRunning() bool {
	return s.Status().Running
}

func (s *Scheduler) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Scheduler) loop(ctx context.Context, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer func() {
		s.mu.Lock()
		s.status.Running = false
		s.mu.Unlock()
	}()

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled")
			return
		case <-stopCh:
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout())
	defer cancel()

	start := time.Now()
	err := s.call(runCtx)
	elapsed := time.Since(start)

	s.mu.Lock()
	s.status.Runs++
	s.status.LastRun = time.Now()
	s.status.LastErr = err
	if err != nil {
		s.status.Failures++
	} else {
		s.status.Failures = 0
	}
	failures := s.status.Failures
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Scheduled run failed",
			zap.Error(err),
			zap.Int("consecutive_failures", failures),
			zap.Duration("duration", elapsed),
		)
		return
	}
	s.logger.Debug("Scheduled run completed", zap.Duration("duration", elapsed))
}

func (s *Scheduler) call(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, rec)
		}
	}()
	return s.task(ctx)
}

// runTimeout keeps a run from overlapping the next tick.
func (s *Scheduler) runTimeout() time.Duration {
	if s.interval > 2*time.Second {
		return s.interval - time.Second
	}
	return s.interval
}
