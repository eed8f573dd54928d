// Package worker runs the reminder sweep on an in-process ticker.
package worker

import (
	"context"
	"time"

	"buyback_service/internal/usecase"

	"go.uber.org/zap"
)

// ReminderWorker triggers a sweep right away and then on every tick until the
// context is cancelled. The distributed lock keeps replicas from overlapping.
type ReminderWorker struct {
	uc       usecase.IReminderUseCase
	interval time.Duration
	timeout  time.Duration
	log      *zap.Logger
}

func NewReminderWorker(uc usecase.IReminderUseCase, interval, timeout time.Duration, log *zap.Logger) *ReminderWorker {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	return &ReminderWorker{uc: uc, interval: interval, timeout: timeout, log: log.Named("reminder_worker")}
}

func (w *ReminderWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}
	w.log.Info("reminder worker started", zap.Duration("interval", w.interval))
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		w.runOnce(ctx)
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
	w.log.Info("reminder worker stopped")
}

func (w *ReminderWorker) runOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if _, err := w.uc.ProcessEmailReminders(ctx); err != nil {
		w.log.Error("scheduled reminder sweep failed", zap.Error(err))
	}
}
