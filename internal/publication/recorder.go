// Package publication records publication events asynchronously and reports on them.
package publication

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/repository"
)

var (
	ErrRecorderAlreadyRunning = errors.New("publication recorder is already running")
	ErrRecorderNotRunning     = errors.New("publication recorder is not running")
)

const writeTimeout = 5 * time.Second

// Recorder buffers publication entries and writes them from a single worker.
// Record never blocks: entries arriving while the buffer is full are dropped.
type Recorder struct {
	repo      repository.PublicationRepository
	logger    *zap.Logger
	queue     chan models.PublicationEntry
	doneCh    chan struct{}
	isRunning bool
	mu        sync.RWMutex
}

func NewRecorder(repo repository.PublicationRepository, bufferSize int, logger *zap.Logger) *Recorder {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Recorder{
		repo:   repo,
		logger: logger,
		queue:  make(chan models.PublicationEntry, bufferSize),
	}
}

// Start launches the worker.
func (r *Recorder) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return ErrRecorderAlreadyRunning
	}

	r.isRunning = true
	r.doneCh = make(chan struct{})
	go r.run(r.queue, r.doneCh)

	r.logger.Info("Publication recorder started", zap.Int("buffer_size", cap(r.queue)))
	return nil
}

// Stop stops accepting entries and waits until the buffered ones are written or ctx
// expires.
func (r *Recorder) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return ErrRecorderNotRunning
	}
	r.isRunning = false
	queue, done := r.queue, r.doneCh
	r.queue = make(chan models.PublicationEntry, cap(queue))
	close(queue)
	r.mu.Unlock()

	select {
	case <-done:
		r.logger.Info("Publication recorder stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Record enqueues entry for persistence.
func (r *Recorder) Record(entry models.PublicationEntry) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.isRunning {
		r.logger.Warn("Publication dropped, recorder not running",
			zap.String("platform", entry.PlatformName),
			zap.String("status", entry.Status),
		)
		return
	}

	select {
	case r.queue <- entry:
	default:
		r.logger.Warn("Publication dropped, buffer full",
			zap.String("platform", entry.PlatformName),
			zap.String("status", entry.Status),
		)
	}
}

func (r *Recorder) run(queue <-chan models.PublicationEntry, done chan<- struct{}) {
	defer close(done)

	for entry := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := r.repo.Create(ctx, entry)
		cancel()

		if err != nil {
			r.logger.Error("Failed to record publication",
				zap.String("platform", entry.PlatformName),
				zap.String("source", entry.Source),
				zap.String("status", entry.Status),
				zap.Error(err),
			)
			continue
		}

		r.logger.Debug("Publication recorded",
			zap.String("platform", entry.PlatformName),
			zap.String("status", entry.Status),
		)
	}
}
