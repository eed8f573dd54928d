package usecase

import (
	"context"
	"errors"
	"fmt"

	"buyback_service/internal/clock"
	"buyback_service/internal/domain/entities"
	"buyback_service/internal/infrastructure/metrics"
	"buyback_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmailDeliveryFailed = errors.New("email delivery failed")

// ReminderOutcome is the result of one reminder send.
type ReminderOutcome string

const (
	ReminderSent    ReminderOutcome = "sent"
	ReminderSkipped ReminderOutcome = "skipped"
	ReminderFailed  ReminderOutcome = "failed"
)

// INotificationUseCase sends quote emails and records their outcome.
type INotificationUseCase interface {
	SendQuoteConfirmation(ctx context.Context, q entities.Quote) error
	SendReminder(ctx context.Context, q entities.Quote, emailType entities.EmailType) (ReminderOutcome, error)
}

type NotificationUseCase struct {
	logs       interfaces.IEmailLogRepository
	sender     interfaces.IEmailSender
	renderer   interfaces.IEmailRenderer
	clock      clock.Clock
	log        *zap.Logger
	metrics    *metrics.Metrics
	maxRetries int
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(
	logs interfaces.IEmailLogRepository,
	sender interfaces.IEmailSender,
	renderer interfaces.IEmailRenderer,
	clk clock.Clock,
	log *zap.Logger,
	mt *metrics.Metrics,
	maxRetries int,
) *NotificationUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &NotificationUseCase{
		logs:       logs,
		sender:     sender,
		renderer:   renderer,
		clock:      clk,
		log:        log.Named("notifications"),
		metrics:    mt,
		maxRetries: maxRetries,
	}
}

// SendQuoteConfirmation emails the customer their quote. When delivery fails a
// failed log is written and staff get an admin notification; the returned error
// only reports the customer-facing failure.
func (u *NotificationUseCase) SendQuoteConfirmation(ctx context.Context, q entities.Quote) error {
	emailType := entities.EmailTypeQuoteConfirmation

	msg, err := u.renderer.QuoteConfirmation(q)
	if err != nil {
		u.fail(ctx, q, emailType, q.Customer.Email, err.Error())
		u.notifyAdmin(ctx, q, emailType, err.Error())
		return fmt.Errorf("%w: %w", ErrEmailDeliveryFailed, err)
	}

	if !u.sender.SendWithRetry(ctx, msg, u.maxRetries) {
		reason := fmt.Sprintf("delivery failed after %d attempts", u.maxRetries)
		u.fail(ctx, q, emailType, msg.To, reason)
		u.notifyAdmin(ctx, q, emailType, reason)
		return ErrEmailDeliveryFailed
	}

	u.record(ctx, u.newLog(q, emailType, entities.EmailStatusSent, msg.To, nil))
	u.metrics.IncEmailDelivery(string(emailType), string(entities.EmailStatusSent))
	return nil
}

// SendReminder claims the (quote, type) slot before sending, so concurrent
// sweeps cannot both deliver the same reminder. An existing claim yields
// ReminderSkipped.
func (u *NotificationUseCase) SendReminder(ctx context.Context, q entities.Quote, emailType entities.EmailType) (ReminderOutcome, error) {
	claim := u.newLog(q, emailType, entities.EmailStatusSending, q.Customer.Email, nil)
	if err := u.logs.Claim(ctx, claim); err != nil {
		if errors.Is(err, interfaces.ErrEmailAlreadyClaimed) {
			return ReminderSkipped, nil
		}
		return ReminderFailed, fmt.Errorf("claim %s for quote %s: %w", emailType, q.ID, err)
	}

	msg, err := u.renderer.Reminder(q, emailType)
	if err != nil {
		u.release(ctx, q, emailType)
		u.fail(ctx, q, emailType, q.Customer.Email, err.Error())
		return ReminderFailed, fmt.Errorf("%w: %w", ErrEmailDeliveryFailed, err)
	}

	if !u.sender.SendWithRetry(ctx, msg, u.maxRetries) {
		u.release(ctx, q, emailType)
		u.fail(ctx, q, emailType, msg.To, fmt.Sprintf("delivery failed after %d attempts", u.maxRetries))
		return ReminderFailed, ErrEmailDeliveryFailed
	}

	// The claim already blocks duplicates, so a failed status update is only logged.
	if err := u.logs.MarkSent(ctx, q.ID, emailType, u.clock.Now()); err != nil {
		u.log.Error("mark reminder sent failed",
			zap.String("quote_id", q.ID),
			zap.String("type", string(emailType)),
			zap.Error(err),
		)
	}
	u.metrics.IncEmailDelivery(string(emailType), string(entities.EmailStatusSent))
	u.metrics.IncReminderSent(string(emailType))
	return ReminderSent, nil
}

// notifyAdmin is best effort: its own failure is logged and recorded, never returned.
func (u *NotificationUseCase) notifyAdmin(ctx context.Context, q entities.Quote, failed entities.EmailType, reason string) {
	adminType := entities.EmailTypeAdminNotification

	msg, err := u.renderer.AdminNotification(q, failed, reason)
	if err != nil {
		u.log.Error("render admin notification failed", zap.String("quote_id", q.ID), zap.Error(err))
		u.fail(ctx, q, adminType, "", err.Error())
		return
	}
	if !u.sender.SendWithRetry(ctx, msg, u.maxRetries) {
		u.log.Error("admin notification failed",
			zap.String("quote_id", q.ID),
			zap.String("quote_number", q.QuoteNumber),
			zap.String("failed_type", string(failed)),
		)
		u.fail(ctx, q, adminType, msg.To, fmt.Sprintf("delivery failed after %d attempts", u.maxRetries))
		return
	}
	u.record(ctx, u.newLog(q, adminType, entities.EmailStatusSent, msg.To, map[string]string{"failed_type": string(failed)}))
	u.metrics.IncEmailDelivery(string(adminType), string(entities.EmailStatusSent))
}

func (u *NotificationUseCase) fail(ctx context.Context, q entities.Quote, emailType entities.EmailType, recipient, reason string) {
	u.metrics.IncEmailDelivery(string(emailType), string(entities.EmailStatusFailed))
	u.record(ctx, u.newLog(q, emailType, entities.EmailStatusFailed, recipient, map[string]string{"error": reason}))
}

func (u *NotificationUseCase) release(ctx context.Context, q entities.Quote, emailType entities.EmailType) {
	if err := u.logs.Release(ctx, q.ID, emailType); err != nil {
		u.log.Error("release reminder claim failed",
			zap.String("quote_id", q.ID),
			zap.String("type", string(emailType)),
			zap.Error(err),
		)
	}
}

func (u *NotificationUseCase) record(ctx context.Context, l entities.EmailLog) {
	if err := u.logs.Record(ctx, l); err != nil {
		u.log.Error("write email log failed",
			zap.String("quote_id", l.QuoteID),
			zap.String("type", string(l.Type)),
			zap.String("status", string(l.Status)),
			zap.Error(err),
		)
	}
}

func (u *NotificationUseCase) newLog(q entities.Quote, emailType entities.EmailType, status entities.EmailStatus, recipient string, meta map[string]string) entities.EmailLog {
	return entities.EmailLog{
		ID:        uuid.NewString(),
		QuoteID:   q.ID,
		Type:      emailType,
		Status:    status,
		Recipient: recipient,
		Metadata:  meta,
		CreatedAt: u.clock.Now(),
	}
}
