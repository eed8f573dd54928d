// Command reminders runs a single reminder sweep and exits. It is meant for an
// external scheduler (cron, EventBridge, Kubernetes CronJob).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"buyback_service/internal/bootstrap"
	"buyback_service/internal/config"
	"buyback_service/internal/infrastructure/logger"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer c.Close()

	if cfg.Scheduler.SweepTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Scheduler.SweepTimeout)
		defer cancel()
	}

	res, err := c.Reminders.ProcessEmailReminders(ctx)
	if err != nil {
		return fmt.Errorf("reminder sweep: %w", err)
	}
	if res.LockSkipped {
		log.Info("another sweep holds the lock, nothing to do")
	}
	log.Info("done", zap.Int("expired", res.Expired), zap.Int("failed", res.Failed))
	return nil
}
