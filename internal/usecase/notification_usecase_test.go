package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"buyback_service/internal/clock"
	"buyback_service/internal/domain/entities"
	"buyback_service/internal/usecase/interfaces"
	mock_interfaces "buyback_service/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type notificationDeps struct {
	logs     *mock_interfaces.MockIEmailLogRepository
	sender   *mock_interfaces.MockIEmailSender
	renderer *mock_interfaces.MockIEmailRenderer
}

func newNotificationUseCase(t *testing.T) (*NotificationUseCase, notificationDeps) {
	ctrl := gomock.NewController(t)
	d := notificationDeps{
		logs:     mock_interfaces.NewMockIEmailLogRepository(ctrl),
		sender:   mock_interfaces.NewMockIEmailSender(ctrl),
		renderer: mock_interfaces.NewMockIEmailRenderer(ctrl),
	}
	uc := NewNotificationUseCase(d.logs, d.sender, d.renderer, clock.NewFakeClock(testNow), nil, nil, 3)
	return uc, d
}

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:          "q1",
		QuoteNumber: "Q-ABC-123",
		Customer:    entities.Customer{Name: "Jane", Email: "jane@example.com"},
		Status:      entities.QuoteStatusPending,
		CreatedAt:   testNow,
		ExpiresAt:   testNow.Add(entities.QuoteValidity),
	}
}

func logWith(emailType entities.EmailType, status entities.EmailStatus) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		l, ok := x.(entities.EmailLog)
		return ok && l.Type == emailType && l.Status == status && l.QuoteID == "q1"
	})
}

func TestNotificationUseCase_SendQuoteConfirmation(t *testing.T) {
	customerMsg := entities.EmailMessage{To: "jane@example.com", Subject: "Your quote"}
	adminMsg := entities.EmailMessage{To: "ops@example.com", Subject: "Email failed"}

	t.Run("delivered", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		d.renderer.EXPECT().QuoteConfirmation(gomock.Any()).Return(customerMsg, nil)
		d.sender.EXPECT().SendWithRetry(gomock.Any(), customerMsg, 3).Return(true)
		d.logs.EXPECT().Record(gomock.Any(), logWith(entities.EmailTypeQuoteConfirmation, entities.EmailStatusSent)).Return(nil)

		assert.NoError(t, uc.SendQuoteConfirmation(context.Background(), sampleQuote()))
	})

	t.Run("failure notifies admin", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		d.renderer.EXPECT().QuoteConfirmation(gomock.Any()).Return(customerMsg, nil)
		d.sender.EXPECT().SendWithRetry(gomock.Any(), customerMsg, 3).Return(false)
		d.logs.EXPECT().Record(gomock.Any(), logWith(entities.EmailTypeQuoteConfirmation, entities.EmailStatusFailed)).
			DoAndReturn(func(_ context.Context, l entities.EmailLog) error {
				assert.Contains(t, l.Metadata["error"], "3 attempts")
				return nil
			})
		d.renderer.EXPECT().AdminNotification(gomock.Any(), entities.EmailTypeQuoteConfirmation, gomock.Any()).Return(adminMsg, nil)
		d.sender.EXPECT().SendWithRetry(gomock.Any(), adminMsg, 3).Return(true)
		d.logs.EXPECT().Record(gomock.Any(), logWith(entities.EmailTypeAdminNotification, entities.EmailStatusSent)).
			DoAndReturn(func(_ context.Context, l entities.EmailLog) error {
				assert.Equal(t, string(entities.EmailTypeQuoteConfirmation), l.Metadata["failed_type"])
				assert.Equal(t, "ops@example.com", l.Recipient)
				return nil
			})

		err := uc.SendQuoteConfirmation(context.Background(), sampleQuote())
		assert.True(t, errors.Is(err, ErrEmailDeliveryFailed))
	})

	t.Run("admin notification failure is swallowed", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		d.renderer.EXPECT().QuoteConfirmation(gomock.Any()).Return(customerMsg, nil)
		d.sender.EXPECT().SendWithRetry(gomock.Any(), gomock.Any(), 3).Return(false).Times(2)
		d.renderer.EXPECT().AdminNotification(gomock.Any(), gomock.Any(), gomock.Any()).Return(adminMsg, nil)
		d.logs.EXPECT().Record(gomock.Any(), logWith(entities.EmailTypeQuoteConfirmation, entities.EmailStatusFailed)).Return(nil)
		d.logs.EXPECT().Record(gomock.Any(), logWith(entities.EmailTypeAdminNotification, entities.EmailStatusFailed)).Return(errors.New("db down"))

		err := uc.SendQuoteConfirmation(context.Background(), sampleQuote())
		assert.True(t, errors.Is(err, ErrEmailDeliveryFailed))
	})

	t.Run("render failure", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		d.renderer.EXPECT().QuoteConfirmation(gomock.Any()).Return(entities.EmailMessage{}, errors.New("template"))
		d.logs.EXPECT().Record(gomock.Any(), logWith(entities.EmailTypeQuoteConfirmation, entities.EmailStatusFailed)).Return(nil)
		d.renderer.EXPECT().AdminNotification(gomock.Any(), gomock.Any(), gomock.Any()).Return(adminMsg, nil)
		d.sender.EXPECT().SendWithRetry(gomock.Any(), adminMsg, 3).Return(true)
		d.logs.EXPECT().Record(gomock.Any(), logWith(entities.EmailTypeAdminNotification, entities.EmailStatusSent)).Return(nil)

		err := uc.SendQuoteConfirmation(context.Background(), sampleQuote())
		assert.True(t, errors.Is(err, ErrEmailDeliveryFailed))
	})
}

func TestNotificationUseCase_SendReminder(t *testing.T) {
	msg := entities.EmailMessage{To: "jane@example.com", Subject: "Reminder"}
	remType := entities.EmailTypeReminder3Days

	t.Run("already claimed", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		d.logs.EXPECT().Claim(gomock.Any(), logWith(remType, entities.EmailStatusSending)).Return(interfaces.ErrEmailAlreadyClaimed)

		outcome, err := uc.SendReminder(context.Background(), sampleQuote(), remType)
		require.NoError(t, err)
		assert.Equal(t, ReminderSkipped, outcome)
	})

	t.Run("claim error", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		d.logs.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))

		outcome, err := uc.SendReminder(context.Background(), sampleQuote(), remType)
		require.Error(t, err)
		assert.Equal(t, ReminderFailed, outcome)
	})

	t.Run("sent", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		gomock.InOrder(
			d.logs.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil),
			d.renderer.EXPECT().Reminder(gomock.Any(), remType).Return(msg, nil),
			d.sender.EXPECT().SendWithRetry(gomock.Any(), msg, 3).Return(true),
			d.logs.EXPECT().MarkSent(gomock.Any(), "q1", remType, testNow).Return(nil),
		)

		outcome, err := uc.SendReminder(context.Background(), sampleQuote(), remType)
		require.NoError(t, err)
		assert.Equal(t, ReminderSent, outcome)
	})

	t.Run("mark sent failure still counts as sent", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		d.logs.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil)
		d.renderer.EXPECT().Reminder(gomock.Any(), remType).Return(msg, nil)
		d.sender.EXPECT().SendWithRetry(gomock.Any(), msg, 3).Return(true)
		d.logs.EXPECT().MarkSent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))

		outcome, err := uc.SendReminder(context.Background(), sampleQuote(), remType)
		require.NoError(t, err)
		assert.Equal(t, ReminderSent, outcome)
	})

	t.Run("delivery failure releases the claim", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		gomock.InOrder(
			d.logs.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil),
			d.renderer.EXPECT().Reminder(gomock.Any(), remType).Return(msg, nil),
			d.sender.EXPECT().SendWithRetry(gomock.Any(), msg, 3).Return(false),
			d.logs.EXPECT().Release(gomock.Any(), "q1", remType).Return(nil),
			d.logs.EXPECT().Record(gomock.Any(), logWith(remType, entities.EmailStatusFailed)).Return(nil),
		)

		outcome, err := uc.SendReminder(context.Background(), sampleQuote(), remType)
		assert.True(t, errors.Is(err, ErrEmailDeliveryFailed))
		assert.Equal(t, ReminderFailed, outcome)
	})

	t.Run("render failure releases the claim", func(t *testing.T) {
		uc, d := newNotificationUseCase(t)
		d.logs.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(nil)
		d.renderer.EXPECT().Reminder(gomock.Any(), remType).Return(entities.EmailMessage{}, errors.New("bad template"))
		d.logs.EXPECT().Release(gomock.Any(), "q1", remType).Return(nil)
		d.logs.EXPECT().Record(gomock.Any(), logWith(remType, entities.EmailStatusFailed)).Return(nil)

		outcome, err := uc.SendReminder(context.Background(), sampleQuote(), remType)
		assert.True(t, errors.Is(err, ErrEmailDeliveryFailed))
		assert.Equal(t, ReminderFailed, outcome)
	})
}

func TestNewNotificationUseCase_DefaultRetries(t *testing.T) {
	uc := NewNotificationUseCase(nil, nil, nil, nil, nil, nil, 0)
	assert.Equal(t, 3, uc.maxRetries)
	assert.WithinDuration(t, time.Now(), uc.clock.Now(), time.Minute)
}
