package usecase

import (
	"context"
	"errors"
	"sync"
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

// memQuotes is an in-memory quote store with the same conditional semantics as
// the DynamoDB repository.
type memQuotes struct {
	mu     sync.Mutex
	quotes map[string]entities.Quote
}

func newMemQuotes(qs ...entities.Quote) *memQuotes {
	m := &memQuotes{quotes: map[string]entities.Quote{}}
	for _, q := range qs {
		m.quotes[q.ID] = q
	}
	return m
}

func (m *memQuotes) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes[q.ID] = q
	return q, nil
}

func (m *memQuotes) GetByID(_ context.Context, id string) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.quotes[id], nil
}

func (m *memQuotes) GetByNumber(_ context.Context, n string) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.quotes {
		if q.QuoteNumber == n {
			return q, nil
		}
	}
	return entities.Quote{}, nil
}

func (m *memQuotes) UpdateStatus(_ context.Context, id string, from, to entities.QuoteStatus, at time.Time) (entities.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.quotes[id]
	if !ok || q.Status != from {
		return entities.Quote{}, nil
	}
	q.Status = to
	q.UpdatedAt = at
	m.quotes[id] = q
	return q, nil
}

func (m *memQuotes) ListPendingExpiringAfter(_ context.Context, now time.Time) ([]entities.Quote, error) {
	return m.filter(func(q entities.Quote) bool { return q.ExpiresAt.After(now) }), nil
}

func (m *memQuotes) ListPendingExpiredAt(_ context.Context, now time.Time) ([]entities.Quote, error) {
	return m.filter(func(q entities.Quote) bool { return !q.ExpiresAt.After(now) }), nil
}

func (m *memQuotes) filter(keep func(entities.Quote) bool) []entities.Quote {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Quote
	for _, q := range m.quotes {
		if q.Status == entities.QuoteStatusPending && keep(q) {
			out = append(out, q)
		}
	}
	return out
}

// memEmailLogs keeps one slot per (quote, type) for sent/sending logs and a
// list of failures.
type memEmailLogs struct {
	mu       sync.Mutex
	slots    map[string]entities.EmailLog
	failures []entities.EmailLog
	// hideSlots makes ListSentTypes ignore existing slots, simulating a
	// concurrent sweep that claimed after our history read.
	hideSlots bool
}

func newMemEmailLogs() *memEmailLogs {
	return &memEmailLogs{slots: map[string]entities.EmailLog{}}
}

func slotKey(quoteID string, t entities.EmailType) string { return quoteID + "#" + string(t) }

func (m *memEmailLogs) Record(_ context.Context, l entities.EmailLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l.Status == entities.EmailStatusFailed {
		m.failures = append(m.failures, l)
		return nil
	}
	m.slots[slotKey(l.QuoteID, l.Type)] = l
	return nil
}

func (m *memEmailLogs) Claim(_ context.Context, l entities.EmailLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := slotKey(l.QuoteID, l.Type)
	if _, taken := m.slots[k]; taken {
		return interfaces.ErrEmailAlreadyClaimed
	}
	m.slots[k] = l
	return nil
}

func (m *memEmailLogs) MarkSent(_ context.Context, quoteID string, t entities.EmailType, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := slotKey(quoteID, t)
	l := m.slots[k]
	l.Status = entities.EmailStatusSent
	l.CreatedAt = at
	m.slots[k] = l
	return nil
}

func (m *memEmailLogs) Release(_ context.Context, quoteID string, t entities.EmailType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := slotKey(quoteID, t)
	if m.slots[k].Status == entities.EmailStatusSending {
		delete(m.slots, k)
	}
	return nil
}

func (m *memEmailLogs) ListSentTypes(_ context.Context, quoteID string) (map[entities.EmailType]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[entities.EmailType]bool{}
	if m.hideSlots {
		return out, nil
	}
	for _, l := range m.slots {
		if l.QuoteID == quoteID {
			out[l.Type] = true
		}
	}
	return out, nil
}

func (m *memEmailLogs) ListByQuote(_ context.Context, quoteID string) ([]entities.EmailLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.EmailLog
	for _, l := range m.slots {
		if l.QuoteID == quoteID {
			out = append(out, l)
		}
	}
	for _, l := range m.failures {
		if l.QuoteID == quoteID {
			out = append(out, l)
		}
	}
	return out, nil
}

type stubRenderer struct{}

func (stubRenderer) QuoteConfirmation(q entities.Quote) (entities.EmailMessage, error) {
	return entities.EmailMessage{To: q.Customer.Email, Subject: "confirmation"}, nil
}

func (stubRenderer) Reminder(q entities.Quote, t entities.EmailType) (entities.EmailMessage, error) {
	return entities.EmailMessage{To: q.Customer.Email, Subject: string(t)}, nil
}

func (stubRenderer) AdminNotification(entities.Quote, entities.EmailType, string) (entities.EmailMessage, error) {
	return entities.EmailMessage{To: "ops@example.com", Subject: "admin"}, nil
}

type countingSender struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (s *countingSender) SendWithRetry(_ context.Context, msg entities.EmailMessage, _ int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return false
	}
	s.sent = append(s.sent, msg.Subject)
	return true
}

type sweepFixture struct {
	clock  *clock.FakeClock
	quotes *memQuotes
	logs   *memEmailLogs
	sender *countingSender
	uc     *ReminderUseCase
}

var sweepStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newSweepFixture(locker interfaces.ISweepLocker, qs ...entities.Quote) *sweepFixture {
	f := &sweepFixture{
		clock:  clock.NewFakeClock(sweepStart),
		quotes: newMemQuotes(qs...),
		logs:   newMemEmailLogs(),
		sender: &countingSender{},
	}
	notifier := NewNotificationUseCase(f.logs, f.sender, stubRenderer{}, f.clock, nil, nil, 3)
	f.uc = NewReminderUseCase(f.quotes, f.logs, notifier, locker, f.clock, nil, nil, ReminderConfig{})
	return f
}

func pendingQuote(id string, createdAt time.Time) entities.Quote {
	return entities.Quote{
		ID:          id,
		QuoteNumber: "Q-" + id,
		Customer:    entities.Customer{Name: "Jane", Email: "jane@example.com"},
		Status:      entities.QuoteStatusPending,
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(entities.QuoteValidity),
		UpdatedAt:   createdAt,
	}
}

func (f *sweepFixture) runAt(t *testing.T, offset time.Duration) SweepResult {
	t.Helper()
	f.clock.Set(sweepStart.Add(offset))
	res, err := f.uc.ProcessEmailReminders(context.Background())
	require.NoError(t, err)
	return res
}

func TestReminderUseCase_Lifecycle(t *testing.T) {
	f := newSweepFixture(nil, pendingQuote("q1", sweepStart))

	res := f.runAt(t, 0)
	assert.Equal(t, 1, res.Scanned)
	assert.Empty(t, res.Sent)

	res = f.runAt(t, 8*day)
	assert.Equal(t, 1, res.Sent[entities.EmailTypeReminder7Days])

	// Same window again: history already has the 7-day reminder.
	res = f.runAt(t, 8*day+time.Hour)
	assert.Empty(t, res.Sent)
	assert.Equal(t, 1, res.Skipped)

	res = f.runAt(t, 12*day)
	assert.Equal(t, 1, res.Sent[entities.EmailTypeReminder3Days])

	res = f.runAt(t, 13*day)
	assert.Equal(t, 1, res.Sent[entities.EmailTypeReminder1Day])

	res = f.runAt(t, 13*day+12*time.Hour)
	assert.Empty(t, res.Sent)

	res = f.runAt(t, 14*day)
	assert.Equal(t, 0, res.Scanned)
	assert.Equal(t, 1, res.Expired)

	q, _ := f.quotes.GetByID(context.Background(), "q1")
	assert.Equal(t, entities.QuoteStatusExpired, q.Status)

	res = f.runAt(t, 15*day)
	assert.Equal(t, 0, res.Expired)

	assert.Equal(t, []string{
		string(entities.EmailTypeReminder7Days),
		string(entities.EmailTypeReminder3Days),
		string(entities.EmailTypeReminder1Day),
	}, f.sender.sent)
}

func TestReminderUseCase_OnlyPendingQuotes(t *testing.T) {
	done := pendingQuote("done", sweepStart)
	done.Status = entities.QuoteStatusCompleted
	f := newSweepFixture(nil, done, pendingQuote("open", sweepStart))

	res := f.runAt(t, 8*day)
	assert.Equal(t, 1, res.Scanned)
	assert.Equal(t, 1, res.Sent[entities.EmailTypeReminder7Days])

	res = f.runAt(t, 14*day)
	assert.Equal(t, 1, res.Expired)
	q, _ := f.quotes.GetByID(context.Background(), "done")
	assert.Equal(t, entities.QuoteStatusCompleted, q.Status)
}

func TestReminderUseCase_FailedSendIsRetriedNextSweep(t *testing.T) {
	f := newSweepFixture(nil, pendingQuote("q1", sweepStart))
	f.sender.fail = true

	res := f.runAt(t, 8*day)
	assert.Equal(t, 1, res.Failed)
	assert.Len(t, f.logs.failures, 1)

	f.sender.fail = false
	res = f.runAt(t, 9*day)
	assert.Equal(t, 1, res.Sent[entities.EmailTypeReminder7Days])
}

func TestReminderUseCase_ConcurrentClaimIsSkipped(t *testing.T) {
	f := newSweepFixture(nil, pendingQuote("q1", sweepStart))
	require.NoError(t, f.logs.Claim(context.Background(), entities.EmailLog{
		QuoteID: "q1",
		Type:    entities.EmailTypeReminder7Days,
		Status:  entities.EmailStatusSending,
	}))
	f.logs.hideSlots = true

	res := f.runAt(t, 8*day)
	assert.Empty(t, res.Sent)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, f.sender.sent)
}

func TestReminderUseCase_Lock(t *testing.T) {
	t.Run("held elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := mock_interfaces.NewMockISweepLocker(ctrl)
		locker.EXPECT().TryAcquire(gomock.Any(), SweepLockName, 15*time.Minute).Return(nil, false, nil)

		f := newSweepFixture(locker, pendingQuote("q1", sweepStart))
		res := f.runAt(t, 8*day)
		assert.True(t, res.LockSkipped)
		assert.Empty(t, f.sender.sent)
	})

	t.Run("acquired and released", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := mock_interfaces.NewMockISweepLocker(ctrl)
		released := false
		locker.EXPECT().TryAcquire(gomock.Any(), SweepLockName, gomock.Any()).Return(
			func(context.Context) error { released = true; return nil }, true, nil,
		)

		f := newSweepFixture(locker, pendingQuote("q1", sweepStart))
		res := f.runAt(t, 8*day)
		assert.False(t, res.LockSkipped)
		assert.Equal(t, 1, res.Sent[entities.EmailTypeReminder7Days])
		assert.True(t, released)
	})

	t.Run("lock store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := mock_interfaces.NewMockISweepLocker(ctrl)
		locker.EXPECT().TryAcquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))

		f := newSweepFixture(locker)
		_, err := f.uc.ProcessEmailReminders(context.Background())
		assert.Error(t, err)
	})
}

func TestReminderUseCase_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	quotes.EXPECT().ListPendingExpiringAfter(gomock.Any(), gomock.Any()).Return(nil, errors.New("scan failed"))

	uc := NewReminderUseCase(quotes, newMemEmailLogs(), nil, nil, clock.NewFakeClock(sweepStart), nil, nil, ReminderConfig{})
	_, err := uc.ProcessEmailReminders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan failed")
}

func TestDaysRemainingAndReminderType(t *testing.T) {
	now := sweepStart
	cases := []struct {
		name     string
		left     time.Duration
		days     int
		wantType entities.EmailType
		due      bool
	}{
		{"fresh quote", 14 * day, 14, "", false},
		{"just over a week", 7*day + time.Nanosecond, 8, "", false},
		{"exactly a week", 7 * day, 7, entities.EmailTypeReminder7Days, true},
		{"four days", 3*day + time.Second, 4, entities.EmailTypeReminder7Days, true},
		{"three days", 3 * day, 3, entities.EmailTypeReminder3Days, true},
		{"just over a day", day + time.Nanosecond, 2, entities.EmailTypeReminder3Days, true},
		{"one day", day, 1, entities.EmailTypeReminder1Day, true},
		{"one hour", time.Hour, 1, entities.EmailTypeReminder1Day, true},
		{"expired", 0, 0, "", false},
		{"long expired", -day, 0, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days := DaysRemaining(now.Add(tc.left), now)
			assert.Equal(t, tc.days, days)
			got, due := ReminderTypeFor(days)
			assert.Equal(t, tc.due, due)
			assert.Equal(t, tc.wantType, got)
		})
	}
}
