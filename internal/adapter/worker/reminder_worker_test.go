package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"buyback_service/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type countingSweeper struct {
	calls  atomic.Int32
	stopAt int32
	cancel context.CancelFunc
	err    error
}

func (s *countingSweeper) ProcessEmailReminders(ctx context.Context) (usecase.SweepResult, error) {
	if _, ok := ctx.Deadline(); !ok {
		return usecase.SweepResult{}, errors.New("sweep context has no deadline")
	}
	if s.calls.Add(1) >= s.stopAt {
		s.cancel()
	}
	return usecase.SweepResult{}, s.err
}

func TestReminderWorker_RunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := &countingSweeper{stopAt: 3, cancel: cancel}

	done := make(chan struct{})
	go func() {
		NewReminderWorker(s, 5*time.Millisecond, time.Second, nil).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancellation")
	}
	assert.Equal(t, int32(3), s.calls.Load())
}

func TestReminderWorker_KeepsGoingAfterErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := &countingSweeper{stopAt: 2, cancel: cancel, err: errors.New("redis down")}

	NewReminderWorker(s, time.Millisecond, time.Second, nil).Run(ctx)
	assert.Equal(t, int32(2), s.calls.Load())
}

func TestReminderWorker_DisabledInterval(t *testing.T) {
	s := &countingSweeper{stopAt: 1, cancel: func() {}}

	NewReminderWorker(s, 0, time.Second, nil).Run(context.Background())
	assert.Equal(t, int32(0), s.calls.Load())
}
