package email

import (
	"context"
	"time"

	"buyback_service/internal/domain/entities"
	"buyback_service/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

// DefaultMaxRetries is the number of delivery attempts used by callers that do
// not pick their own.
const DefaultMaxRetries = 3

const baseBackoff = time.Second

// Mailer wraps a Transport with bounded retries and exponential backoff.
type Mailer struct {
	transport      Transport
	log            *zap.Logger
	metrics        *metrics.Metrics
	attemptTimeout time.Duration
	sleep          func(ctx context.Context, d time.Duration) error
}

type MailerOption func(*Mailer)

// WithSleep replaces the backoff wait. Tests use it to record delays.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) MailerOption {
	return func(m *Mailer) { m.sleep = fn }
}

func WithAttemptTimeout(d time.Duration) MailerOption {
	return func(m *Mailer) { m.attemptTimeout = d }
}

func WithMetrics(mt *metrics.Metrics) MailerOption {
	return func(m *Mailer) { m.metrics = mt }
}

func NewMailer(transport Transport, log *zap.Logger, opts ...MailerOption) *Mailer {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Mailer{
		transport:      transport,
		log:            log.Named("mailer"),
		attemptTimeout: 20 * time.Second,
		sleep:          sleepContext,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SendWithRetry tries up to maxRetries times and waits 1s, 2s, 4s, ... between
// attempts. It returns true on the first success and false once every attempt
// failed. A cancelled context stops further attempts.
func (m *Mailer) SendWithRetry(ctx context.Context, msg entities.EmailMessage, maxRetries int) bool {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = m.attempt(ctx, msg)
		if lastErr == nil {
			m.metrics.IncEmailAttempt("success")
			if attempt > 1 {
				m.log.Info("email delivered after retry",
					zap.String("to", msg.To),
					zap.String("subject", msg.Subject),
					zap.Int("attempt", attempt),
				)
			}
			return true
		}

		m.metrics.IncEmailAttempt("failure")
		m.log.Warn("email delivery attempt failed",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(lastErr),
		)

		if attempt == maxRetries {
			break
		}
		if err := m.sleep(ctx, backoff(attempt)); err != nil {
			lastErr = err
			break
		}
	}

	m.log.Error("email delivery failed",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("max_retries", maxRetries),
		zap.Error(lastErr),
	)
	return false
}

func (m *Mailer) attempt(ctx context.Context, msg entities.EmailMessage) error {
	if m.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.attemptTimeout)
		defer cancel()
	}
	return m.transport.Send(ctx, msg)
}

// backoff returns 1000 * 2^(attempt-1) milliseconds.
func backoff(attempt int) time.Duration {
	return baseBackoff << (attempt - 1)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
