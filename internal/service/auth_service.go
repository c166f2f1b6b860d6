package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/api"
	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/pnba"
	"github.com/popeskul/pnba-gateway/internal/provider"
)

const lockCallTimeout = 2 * time.Second

type breakerReporter interface {
	State() provider.BreakerState
	Counts() (requests, failures uint32)
}

// sessionEntry is guarded in two parts: the session by mu, the bookkeeping fields by
// the registry mutex. An invalidated entry stays registered until it idles out so a
// repeated invalidate is answered, but it holds no lock and counts as inactive.
type sessionEntry struct {
	mu      sync.Mutex
	session *pnba.Session

	token       string
	lastUsed    time.Time
	dropped     bool
	invalidated bool
}

type AuthConfig struct {
	CallTimeout time.Duration
	SessionTTL  time.Duration
}

type authService struct {
	providers map[string]provider.Provider
	locker    SessionLocker
	publisher pnba.Publisher
	measurer  pnba.Measurer
	cfg       AuthConfig
	logger    *zap.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type AuthOption func(*authService)

func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *authService) { s.now = now }
}

func WithSessionPublisher(p pnba.Publisher) AuthOption {
	return func(s *authService) { s.publisher = p }
}

func WithSessionMeasurer(m pnba.Measurer) AuthOption {
	return func(s *authService) { s.measurer = m }
}

// NewAuthService registers one provider per platform, keyed by the lower-cased
// provider name.
func NewAuthService(
	providers []provider.Provider,
	locker SessionLocker,
	cfg AuthConfig,
	logger *zap.Logger,
	opts ...AuthOption,
) AuthService {
	s := &authService{
		providers: make(map[string]provider.Provider, len(providers)),
		locker:    locker,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*sessionEntry),
	}
	for _, p := range providers {
		s.providers[strings.ToLower(p.Name())] = p
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authService) RequestAuthorization(ctx context.Context, platform, phoneNumber string) (*SessionResult, error) {
	p, err := s.provider(platform)
	if err != nil {
		return nil, err
	}

	session, err := pnba.NewSession(phoneNumber, p, s.sessionOptions()...)
	if err != nil {
		return nil, err
	}
	key := sessionKey(session.Platform(), session.PhoneNumber())

	entry := &sessionEntry{session: session, lastUsed: s.now()}
	entry.mu.Lock()
	defer entry.mu.Unlock()

	s.mu.Lock()
	var staleToken string
	if existing, ok := s.sessions[key]; ok {
		if !s.expired(existing) && !existing.invalidated {
			s.mu.Unlock()
			return nil, pnba.ErrSessionAlreadyActive
		}
		s.dropLocked(key, existing)
		staleToken = existing.token
	}
	s.sessions[key] = entry
	s.mu.Unlock()
	s.release(key, staleToken)

	token, err := s.acquire(ctx, key)
	if err != nil {
		s.mu.Lock()
		s.dropLocked(key, entry)
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Lock()
	entry.token = token
	s.mu.Unlock()

	res, err := session.RequestAuthorization(ctx)
	s.settle(key, entry)
	if err != nil {
		return nil, err
	}

	return s.result(session, res.Message), nil
}

func (s *authService) SubmitCode(ctx context.Context, platform, phoneNumber, code string) (*SessionResult, error) {
	var out *SessionResult
	err := s.withSession(platform, phoneNumber, func(session *pnba.Session) error {
		res, err := session.SubmitCode(ctx, code)
		if err != nil {
			return err
		}
		if res.Outcome == pnba.CodeOutcomeSecondFactorRequired {
			out = s.result(session, "Two-step verification is enabled for this account.")
			out.SecondFactorRequired = true
			return nil
		}
		out = s.result(session, ackMessage(res.Ack, fmt.Sprintf("Successfully authenticated with %s.", session.Platform())))
		return nil
	})
	return out, err
}

func (s *authService) SubmitSecondFactor(ctx context.Context, platform, phoneNumber, password string) (*SessionResult, error) {
	var out *SessionResult
	err := s.withSession(platform, phoneNumber, func(session *pnba.Session) error {
		ack, err := session.SubmitSecondFactor(ctx, password)
		if err != nil {
			return err
		}
		out = s.result(session, ackMessage(ack, fmt.Sprintf("Successfully authenticated with %s.", session.Platform())))
		return nil
	})
	return out, err
}

func (s *authService) Invalidate(ctx context.Context, platform, phoneNumber string) (*SessionResult, error) {
	var out *SessionResult
	err := s.withEntry(platform, phoneNumber, true, func(session *pnba.Session) error {
		ack, err := session.Invalidate(ctx)
		if err != nil {
			return err
		}
		out = s.result(session, ack.Message)
		return nil
	})
	return out, err
}

func (s *authService) SendMessage(ctx context.Context, platform, phoneNumber, recipient, text string) (*SessionResult, error) {
	var out *SessionResult
	err := s.withSession(platform, phoneNumber, func(session *pnba.Session) error {
		msg, err := session.SendMessage(ctx, recipient, text)
		if err != nil {
			return err
		}
		out = s.result(session, msg)
		return nil
	})
	return out, err
}

// EvictExpired removes sessions idle for longer than the session TTL and returns
// how many were removed.
func (s *authService) EvictExpired() int {
	type evicted struct{ key, token string }
	var released []evicted

	s.mu.Lock()
	for key, entry := range s.sessions {
		if s.expired(entry) {
			s.dropLocked(key, entry)
			released = append(released, evicted{key: key, token: entry.token})
		}
	}
	s.mu.Unlock()

	for _, e := range released {
		s.release(e.key, e.token)
	}
	if len(released) > 0 {
		s.logger.Info("Expired sessions evicted", zap.Int("count", len(released)))
	}
	return len(released)
}

func (s *authService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, entry := range s.sessions {
		if !s.expired(entry) && !entry.invalidated {
			n++
		}
	}
	return n
}

// GetCircuitBreakerStatus reports the least healthy breaker across platforms and
// the summed counts of all of them.
func (s *authService) GetCircuitBreakerStatus() (api.HealthResponseCircuitBreakerState, uint32, uint32) {
	state := api.Closed
	var requests, failures uint32

	for _, p := range s.providers {
		b, ok := p.(breakerReporter)
		if !ok {
			continue
		}
		r, f := b.Counts()
		requests += r
		failures += f

		switch b.State() {
		case provider.BreakerOpen:
			state = api.Open
		case provider.BreakerHalfOpen:
			if state != api.Open {
				state = api.HalfOpen
			}
		}
	}

	return state, requests, failures
}

func (s *authService) withSession(platform, phoneNumber string, fn func(*pnba.Session) error) error {
	return s.withEntry(platform, phoneNumber, false, fn)
}

// withEntry runs fn on the registered session under its lock. Invalidated sessions
// are only visible when acceptInvalidated is set.
func (s *authService) withEntry(platform, phoneNumber string, acceptInvalidated bool, fn func(*pnba.Session) error) error {
	p, err := s.provider(platform)
	if err != nil {
		return err
	}
	phone, err := models.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return &pnba.Error{Kind: pnba.KindInvalidPhoneNumber, Err: err}
	}
	key := sessionKey(p.Name(), phone)

	s.mu.Lock()
	entry, ok := s.sessions[key]
	if ok && s.expired(entry) {
		s.dropLocked(key, entry)
		token := entry.token
		s.mu.Unlock()
		s.release(key, token)
		return ErrSessionNotFound
	}
	if !ok || (entry.invalidated && !acceptInvalidated) {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	entry.lastUsed = s.now()
	s.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	s.mu.Lock()
	dropped := entry.dropped
	s.mu.Unlock()
	if dropped {
		return ErrSessionNotFound
	}

	err = fn(entry.session)
	s.settle(key, entry)
	return err
}

// settle drops sessions that can no longer make progress, leaves invalidated ones
// registered without their lock, and keeps the lock of the others alive. Callers hold entry.mu.
func (s *authService) settle(key string, entry *sessionEntry) {
	state := entry.session.State()

	s.mu.Lock()
	if entry.dropped {
		s.mu.Unlock()
		return
	}
	token := entry.token
	if state == pnba.StateInvalidated {
		entry.invalidated = true
		entry.token = ""
		entry.lastUsed = s.now()
		s.mu.Unlock()
		s.release(key, token)
		return
	}
	if state.IsTerminal() || state == pnba.StateUnauthenticated {
		s.dropLocked(key, entry)
		s.mu.Unlock()
		s.release(key, token)
		return
	}
	entry.lastUsed = s.now()
	s.mu.Unlock()

	s.refresh(key, token)
}

func (s *authService) dropLocked(key string, entry *sessionEntry) {
	entry.dropped = true
	if s.sessions[key] == entry {
		delete(s.sessions, key)
	}
}

func (s *authService) expired(entry *sessionEntry) bool {
	return s.now().After(entry.lastUsed.Add(s.cfg.SessionTTL))
}

func (s *authService) provider(platform string) (provider.Provider, error) {
	p, ok := s.providers[strings.ToLower(platform)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlatform, platform)
	}
	return p, nil
}

// acquire takes the cross-instance lock. An unreachable lock store degrades to the
// local registry alone.
func (s *authService) acquire(ctx context.Context, key string) (string, error) {
	if s.locker == nil {
		return "", nil
	}

	ctx, cancel := context.WithTimeout(ctx, lockCallTimeout)
	defer cancel()

	token, err := s.locker.Acquire(ctx, key, s.cfg.SessionTTL)
	switch {
	case errors.Is(err, ErrLockHeld):
		return "", pnba.ErrSessionAlreadyActive
	case err != nil:
		s.logger.Warn("Session lock unavailable, using local registry only", zap.String("key", key), zap.Error(err))
		return "", nil
	}
	return token, nil
}

func (s *authService) refresh(key, token string) {
	if s.locker == nil || token == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockCallTimeout)
	defer cancel()

	if err := s.locker.Refresh(ctx, key, token, s.cfg.SessionTTL); err != nil {
		s.logger.Warn("Failed to refresh session lock", zap.String("key", key), zap.Error(err))
	}
}

func (s *authService) release(key, token string) {
	if s.locker == nil || token == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockCallTimeout)
	defer cancel()

	if err := s.locker.Release(ctx, key, token); err != nil {
		s.logger.Warn("Failed to release session lock", zap.String("key", key), zap.Error(err))
	}
}

func (s *authService) sessionOptions() []pnba.Option {
	opts := []pnba.Option{
		pnba.WithTimeout(s.cfg.CallTimeout),
		pnba.WithLogger(s.logger),
		pnba.WithClock(s.now),
	}
	if s.publisher != nil {
		opts = append(opts, pnba.WithPublisher(s.publisher))
	}
	if s.measurer != nil {
		opts = append(opts, pnba.WithMeasurer(s.measurer))
	}
	return opts
}

func (s *authService) result(session *pnba.Session, message string) *SessionResult {
	return &SessionResult{
		SessionID:   session.ID(),
		Platform:    session.Platform(),
		PhoneNumber: session.PhoneNumber().String(),
		State:       session.State(),
		Message:     message,
	}
}

func sessionKey(platform string, phone models.PhoneNumber) string {
	return strings.ToLower(platform) + ":" + phone.String()
}

func ackMessage(ack *provider.Ack, fallback string) string {
	if ack != nil && ack.Message != "" {
		return ack.Message
	}
	return fallback
}
