package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"buyback_service/internal/clock"
	"buyback_service/internal/domain/entities"
	"buyback_service/internal/infrastructure/metrics"
	"buyback_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const day = 24 * time.Hour

// SweepLockName is the distributed lock taken for the duration of a sweep.
const SweepLockName = "reminder-sweep"

// SweepResult summarizes one reminder sweep.
type SweepResult struct {
	StartedAt   time.Time
	Duration    time.Duration
	LockSkipped bool
	Scanned     int
	Sent        map[entities.EmailType]int
	Skipped     int
	Failed      int
	Expired     int
}

// IReminderUseCase runs the reminder sweep.
//
// The sweep is a batch job: it must be invoked at least once per day, hourly
// is recommended, or reminder windows can be missed.
type IReminderUseCase interface {
	ProcessEmailReminders(ctx context.Context) (SweepResult, error)
}

type ReminderConfig struct {
	LockTTL time.Duration
}

func (c ReminderConfig) withDefaults() ReminderConfig {
	if c.LockTTL <= 0 {
		c.LockTTL = 15 * time.Minute
	}
	return c
}

type ReminderUseCase struct {
	quotes   interfaces.IQuoteRepository
	logs     interfaces.IEmailLogRepository
	notifier INotificationUseCase
	locker   interfaces.ISweepLocker
	clock    clock.Clock
	log      *zap.Logger
	metrics  *metrics.Metrics
	cfg      ReminderConfig
}

var _ IReminderUseCase = (*ReminderUseCase)(nil)

// NewReminderUseCase wires the sweep. locker may be nil, in which case no
// cross-process lock is taken.
func NewReminderUseCase(
	quotes interfaces.IQuoteRepository,
	logs interfaces.IEmailLogRepository,
	notifier INotificationUseCase,
	locker interfaces.ISweepLocker,
	clk clock.Clock,
	log *zap.Logger,
	mt *metrics.Metrics,
	cfg ReminderConfig,
) *ReminderUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ReminderUseCase{
		quotes:   quotes,
		logs:     logs,
		notifier: notifier,
		locker:   locker,
		clock:    clk,
		log:      log.Named("reminders"),
		metrics:  mt,
		cfg:      cfg.withDefaults(),
	}
}

// DaysRemaining rounds the time left until expiry up to whole days.
func DaysRemaining(expiresAt, now time.Time) int {
	left := expiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + day - 1) / day)
}

// ReminderTypeFor maps days remaining to the reminder due in that window.
func ReminderTypeFor(daysRemaining int) (entities.EmailType, bool) {
	switch {
	case daysRemaining > 3 && daysRemaining <= 7:
		return entities.EmailTypeReminder7Days, true
	case daysRemaining > 1 && daysRemaining <= 3:
		return entities.EmailTypeReminder3Days, true
	case daysRemaining == 1:
		return entities.EmailTypeReminder1Day, true
	}
	return "", false
}

// ProcessEmailReminders sends due reminders for pending quotes and then expires
// pending quotes past their expiry. Each reminder type goes out at most once per
// quote: the log history is checked first and the send itself is guarded by a
// unique claim in the log store.
func (u *ReminderUseCase) ProcessEmailReminders(ctx context.Context) (SweepResult, error) {
	res := SweepResult{StartedAt: u.clock.Now().UTC(), Sent: map[entities.EmailType]int{}}
	start := time.Now()

	if u.locker != nil {
		release, acquired, err := u.locker.TryAcquire(ctx, SweepLockName, u.cfg.LockTTL)
		if err != nil {
			u.metrics.ObserveSweep("error", time.Since(start))
			return res, fmt.Errorf("acquire sweep lock: %w", err)
		}
		if !acquired {
			u.log.Info("reminder sweep already running elsewhere, skipping")
			res.LockSkipped = true
			u.metrics.ObserveSweep("locked", time.Since(start))
			return res, nil
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				u.log.Warn("release sweep lock failed", zap.Error(err))
			}
		}()
	}

	err := u.sweep(ctx, &res)
	res.Duration = time.Since(start)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	u.metrics.ObserveSweep(outcome, res.Duration)
	u.log.Info("reminder sweep finished",
		zap.Int("scanned", res.Scanned),
		zap.Int("sent_7_days", res.Sent[entities.EmailTypeReminder7Days]),
		zap.Int("sent_3_days", res.Sent[entities.EmailTypeReminder3Days]),
		zap.Int("sent_1_day", res.Sent[entities.EmailTypeReminder1Day]),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed),
		zap.Int("expired", res.Expired),
		zap.Duration("duration", res.Duration),
		zap.Error(err),
	)
	return res, err
}

func (u *ReminderUseCase) sweep(ctx context.Context, res *SweepResult) error {
	now := res.StartedAt

	pending, err := u.quotes.ListPendingExpiringAfter(ctx, now)
	if err != nil {
		return fmt.Errorf("list pending quotes: %w", err)
	}
	res.Scanned = len(pending)

	for _, q := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		u.remind(ctx, q, now, res)
	}

	expired, err := u.quotes.ListPendingExpiredAt(ctx, now)
	if err != nil {
		return fmt.Errorf("list expired quotes: %w", err)
	}
	for _, q := range expired {
		updated, err := u.quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusPending, entities.QuoteStatusExpired, now)
		if err != nil {
			u.log.Error("expire quote failed", zap.String("quote_id", q.ID), zap.Error(err))
			continue
		}
		if updated.ID != "" {
			res.Expired++
		}
	}
	u.metrics.AddQuotesExpired(res.Expired)
	return nil
}

func (u *ReminderUseCase) remind(ctx context.Context, q entities.Quote, now time.Time, res *SweepResult) {
	emailType, due := ReminderTypeFor(DaysRemaining(q.ExpiresAt, now))
	if !due {
		return
	}

	sent, err := u.logs.ListSentTypes(ctx, q.ID)
	if err != nil {
		res.Failed++
		u.log.Error("load email history failed", zap.String("quote_id", q.ID), zap.Error(err))
		return
	}
	if sent[emailType] {
		res.Skipped++
		return
	}

	outcome, err := u.notifier.SendReminder(ctx, q, emailType)
	switch outcome {
	case ReminderSent:
		res.Sent[emailType]++
	case ReminderSkipped:
		res.Skipped++
	default:
		res.Failed++
		if err != nil && !errors.Is(err, ErrEmailDeliveryFailed) {
			u.log.Error("send reminder failed",
				zap.String("quote_id", q.ID),
				zap.String("type", string(emailType)),
				zap.Error(err),
			)
		}
	}
}
