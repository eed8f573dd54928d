package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"buyback_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyTransport struct {
	failures int
	calls    int
}

func (f *flakyTransport) Send(ctx context.Context, _ entities.EmailMessage) error {
	f.calls++
	if f.failures < 0 || f.calls <= f.failures {
		return errors.New("smtp: 421 service not available")
	}
	return nil
}

func recordSleeps(delays *[]time.Duration) MailerOption {
	return WithSleep(func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	})
}

var testMsg = entities.EmailMessage{From: "quotes@example.com", To: "jane@example.com", Subject: "Your quote", HTML: "<p>hi</p>"}

func TestSendWithRetry_SucceedsOnThirdAttempt(t *testing.T) {
	transport := &flakyTransport{failures: 2}
	var delays []time.Duration
	m := NewMailer(transport, nil, recordSleeps(&delays))

	ok := m.SendWithRetry(context.Background(), testMsg, 3)

	assert.True(t, ok)
	assert.Equal(t, 3, transport.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

func TestSendWithRetry_AlwaysFails(t *testing.T) {
	for _, maxRetries := range []int{1, 3, 4} {
		transport := &flakyTransport{failures: -1}
		var delays []time.Duration
		m := NewMailer(transport, nil, recordSleeps(&delays))

		ok := m.SendWithRetry(context.Background(), testMsg, maxRetries)

		assert.False(t, ok)
		assert.Equal(t, maxRetries, transport.calls)
		assert.Len(t, delays, maxRetries-1)
	}
}

func TestSendWithRetry_FirstAttemptSucceeds(t *testing.T) {
	transport := &flakyTransport{}
	var delays []time.Duration
	m := NewMailer(transport, nil, recordSleeps(&delays))

	require.True(t, m.SendWithRetry(context.Background(), testMsg, 3))
	assert.Equal(t, 1, transport.calls)
	assert.Empty(t, delays)
}

func TestSendWithRetry_StopsWhenContextCancelled(t *testing.T) {
	transport := &flakyTransport{failures: -1}
	m := NewMailer(transport, nil, WithSleep(func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	}))

	assert.False(t, m.SendWithRetry(context.Background(), testMsg, 3))
	assert.Equal(t, 1, transport.calls)
}

func TestSendWithRetry_DefaultsMaxRetries(t *testing.T) {
	transport := &flakyTransport{failures: -1}
	var delays []time.Duration
	m := NewMailer(transport, nil, recordSleeps(&delays))

	assert.False(t, m.SendWithRetry(context.Background(), testMsg, 0))
	assert.Equal(t, DefaultMaxRetries, transport.calls)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, time.Second, backoff(1))
	assert.Equal(t, 2*time.Second, backoff(2))
	assert.Equal(t, 4*time.Second, backoff(3))
}
