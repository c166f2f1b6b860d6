package pnba

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/popeskul/pnba-gateway/internal/models"
	"github.com/popeskul/pnba-gateway/internal/provider"
)

// State is the position of a Session in the authentication protocol.
type State string

const (
	StateUnauthenticated  State = "unauthenticated"
	StateCodeRequested    State = "code_requested"
	StatePasswordRequired State = "password_required"
	StateAuthenticated    State = "authenticated"
	StateFailed           State = "failed"
	StateInvalidated      State = "invalidated"
)

// IsTerminal reports whether the session can no longer make progress.
func (s State) IsTerminal() bool {
	return s == StateFailed || s == StateInvalidated
}

const timestampLayout = "2006-01-02 15:04:05"

// Publisher records that a message was published. Implementations must not block.
type Publisher interface {
	Record(entry models.PublicationEntry)
}

// Measurer starts a delivery measurement for a sender. It returns a nil client when
// the sender is not a registered gateway client.
type Measurer interface {
	Measure(ctx context.Context, msisdn string, sentAt time.Time) (*models.GatewayClient, error)
}

// Session is one authentication attempt for one phone number on one platform.
// It is not safe for concurrent use; callers serialize operations per session.
type Session struct {
	id        string
	phone     models.PhoneNumber
	platform  string
	provider  provider.Provider
	state     State
	createdAt time.Time

	timeout   time.Duration
	publisher Publisher
	measurer  Measurer
	logger    *zap.Logger
	now       func() time.Time
}

type Option func(*Session)

// WithTimeout bounds every provider call made by the session.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

func WithPublisher(p Publisher) Option {
	return func(s *Session) { s.publisher = p }
}

func WithMeasurer(m Measurer) Option {
	return func(s *Session) { s.measurer = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession normalizes phoneNumber and returns a session in StateUnauthenticated.
func NewSession(phoneNumber string, p provider.Provider, opts ...Option) (*Session, error) {
	phone, err := models.NormalizePhoneNumber(phoneNumber)
	if err != nil {
		return nil, &Error{Kind: KindInvalidPhoneNumber, Err: err}
	}

	s := &Session{
		id:       uuid.New().String(),
		phone:    phone,
		platform: p.Name(),
		provider: p,
		state:    StateUnauthenticated,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.createdAt = s.now()
	s.logger = s.logger.With(
		zap.String("session_id", s.id),
		zap.String("platform", s.platform),
		zap.String("phone_number", phone.Masked()),
	)

	return s, nil
}

func (s *Session) ID() string { return s.id }
func (s *Session) PhoneNumber() models.PhoneNumber { return s.phone }
func (s *Session) Platform() string { return s.platform }
func (s *Session) State() State { return s.state }
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// AuthorizationResult confirms that a code was dispatched.
type AuthorizationResult struct {
	Platform string
	Message  string
}

// CodeOutcome distinguishes the two successful answers to a submitted code.
type CodeOutcome string

const (
	CodeOutcomeAuthenticated        CodeOutcome = "authenticated"
	CodeOutcomeSecondFactorRequired CodeOutcome = "second_factor_required"
)

type CodeResult struct {
	Outcome CodeOutcome
	Ack     *provider.Ack
}

// RequestAuthorization asks the platform to deliver a code to the session's number.
func (s *Session) RequestAuthorization(ctx context.Context) (*AuthorizationResult, error) {
	if err := s.expect("request authorization", StateUnauthenticated); err != nil {
		return nil, err
	}

	_, err := s.call(ctx, func(ctx context.Context) (*provider.Ack, error) {
		return s.provider.RequestCode(ctx, s.phone)
	})
	if err != nil {
		return nil, s.fail("request authorization", err)
	}

	s.transition(StateCodeRequested)
	return &AuthorizationResult{
		Platform: s.Platform(),
		Message:  fmt.Sprintf("Successfully sent authorization to your %s app.", s.Platform()),
	}, nil
}

// SubmitCode validates the code delivered by RequestAuthorization. A platform demand
// for a second factor is a successful outcome, not an error.
func (s *Session) SubmitCode(ctx context.Context, code string) (*CodeResult, error) {
	if err := s.expect("submit code", StateCodeRequested); err != nil {
		return nil, err
	}

	ack, err := s.call(ctx, func(ctx context.Context) (*provider.Ack, error) {
		return s.provider.SubmitCode(ctx, s.phone, code)
	})
	if err != nil {
		if err.Kind == KindSecondFactorRequired {
			s.transition(StatePasswordRequired)
			return &CodeResult{Outcome: CodeOutcomeSecondFactorRequired}, nil
		}
		return nil, s.fail("submit code", err)
	}

	s.transition(StateAuthenticated)
	return &CodeResult{Outcome: CodeOutcomeAuthenticated, Ack: ack}, nil
}

// SubmitSecondFactor validates the two-step verification password.
func (s *Session) SubmitSecondFactor(ctx context.Context, password string) (*provider.Ack, error) {
	if err := s.expect("submit second factor", StatePasswordRequired); err != nil {
		return nil, err
	}

	ack, err := s.call(ctx, func(ctx context.Context) (*provider.Ack, error) {
		return s.provider.SubmitSecondFactor(ctx, s.phone, password)
	})
	if err != nil {
		return nil, s.fail("submit second factor", err)
	}

	s.transition(StateAuthenticated)
	return ack, nil
}

// Invalidate revokes the platform session. The local session is invalidated even
// when the platform does not acknowledge the revocation.
func (s *Session) Invalidate(ctx context.Context) (*provider.Ack, error) {
	if s.state == StateInvalidated {
		return &provider.Ack{Message: fmt.Sprintf("Access for %s is already revoked.", s.Platform())}, nil
	}
	if err := s.expect("invalidate", StateAuthenticated); err != nil {
		return nil, err
	}

	_, err := s.call(ctx, func(ctx context.Context) (*provider.Ack, error) {
		return s.provider.Invalidate(ctx, s.phone)
	})
	if err != nil && err.Kind == KindCanceled {
		return nil, err
	}

	s.transition(StateInvalidated)

	if err != nil {
		err = unexpectedSecondFactor(err)
		s.logger.Error("Failed to revoke platform session", zap.String("kind", string(err.Kind)), zap.Error(err.Err))
		return nil, err
	}

	return &provider.Ack{Message: fmt.Sprintf("Successfully revoked access for %s.", s.Platform())}, nil
}

// SendMessage sends text to recipient on behalf of the authenticated number. It
// never changes the session state.
func (s *Session) SendMessage(ctx context.Context, recipient, text string) (string, error) {
	if err := s.expect("send message", StateAuthenticated); err != nil {
		return "", err
	}

	to, normErr := models.NormalizePhoneNumber(recipient)
	if normErr != nil {
		return "", &Error{Kind: KindInvalidPhoneNumber, Err: fmt.Errorf("recipient: %w", normErr)}
	}

	_, err := s.call(ctx, func(ctx context.Context) (*provider.Ack, error) {
		return s.provider.SendMessage(ctx, s.phone, to, text)
	})
	if err != nil {
		err = unexpectedSecondFactor(err)
		if err.Kind != KindCanceled {
			s.publish(models.PublicationEntry{Status: models.PublicationStatusFailed})
		}
		s.log("send message", err)
		return "", err
	}

	sentAt := s.now()
	entry := models.PublicationEntry{Status: models.PublicationStatusPublished}
	if s.measurer != nil {
		client, measureErr := s.measurer.Measure(ctx, s.phone.String(), sentAt)
		switch {
		case measureErr != nil:
			s.logger.Warn("Failed to start reliability measurement", zap.Error(measureErr))
		case client != nil:
			entry.GatewayClient = client.MSISDN
			entry.CountryCode = client.Country
		}
	}
	s.publish(entry)

	timestamp := sentAt.Format(timestampLayout)
	s.logger.Info("Message sent", zap.String("recipient", to.String()), zap.String("sent_at", timestamp))

	return fmt.Sprintf("Successfully sent message to '%s' on your behalf at %s.", s.Platform(), timestamp), nil
}

func (s *Session) expect(op string, allowed State) *Error {
	if s.state != allowed {
		return newError(KindStateViolation, "cannot %s in state %s", op, s.state)
	}
	return nil
}

func (s *Session) call(ctx context.Context, fn func(context.Context) (*provider.Ack, error)) (*provider.Ack, *Error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ack, err := fn(ctx)
	if err != nil {
		return nil, Classify(err)
	}
	if ack == nil {
		ack = &provider.Ack{}
	}
	return ack, nil
}

// fail moves the session to StateFailed unless the caller cancelled, in which case
// the pre-call state is kept so the operation can be retried.
func (s *Session) fail(op string, err *Error) *Error {
	err = unexpectedSecondFactor(err)
	s.log(op, err)
	if err.Kind != KindCanceled {
		s.transition(StateFailed)
	}
	return err
}

// unexpectedSecondFactor reclassifies a second factor demand outside code submission.
func unexpectedSecondFactor(err *Error) *Error {
	if err.Kind != KindSecondFactorRequired {
		return err
	}
	return &Error{Kind: KindProviderUnavailable, Err: fmt.Errorf("unexpected second factor demand: %w", err.Err)}
}

func (s *Session) log(op string, err *Error) {
	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("kind", string(err.Kind)),
		zap.String("state", string(s.state)),
		zap.Error(err.Err),
	}

	switch err.Kind {
	case KindProviderUnavailable:
		s.logger.Error("Provider call failed", fields...)
	case KindRateLimited:
		s.logger.Warn("Provider rate limited the session", append(fields, zap.Duration("retry_after", err.RetryAfter))...)
	case KindCanceled:
		s.logger.Info("Provider call canceled", fields...)
	default:
		s.logger.Info("Provider rejected the session", fields...)
	}
}

func (s *Session) transition(to State) {
	s.logger.Info("Session state changed", zap.String("from", string(s.state)), zap.String("to", string(to)))
	s.state = to
}

func (s *Session) publish(entry models.PublicationEntry) {
	if s.publisher == nil {
		return
	}
	entry.PlatformName = s.Platform()
	entry.Source = models.PublicationSourcePlatforms
	s.publisher.Record(entry)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
