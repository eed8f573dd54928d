// Package bootstrap wires configuration, infrastructure and use cases into one
// container shared by the API server and the sweep command.
package bootstrap

import (
	"context"
	"fmt"

	"buyback_service/internal/adapter/http/handlers"
	"buyback_service/internal/adapter/http/routes"
	"buyback_service/internal/adapter/persistence/repository"
	"buyback_service/internal/clock"
	"buyback_service/internal/config"
	"buyback_service/internal/domain/pricing"
	"buyback_service/internal/infrastructure/cache"
	"buyback_service/internal/infrastructure/database"
	"buyback_service/internal/infrastructure/email"
	"buyback_service/internal/infrastructure/feed"
	"buyback_service/internal/infrastructure/lock"
	"buyback_service/internal/infrastructure/metrics"
	"buyback_service/internal/usecase"
	"buyback_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Container struct {
	Config  config.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics
	Redis   *cache.Redis

	Pricing       *usecase.PricingUseCase
	Quotes        *usecase.QuoteUseCase
	Notifications *usecase.NotificationUseCase
	Reminders     *usecase.ReminderUseCase
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBConfig{
		Region:          cfg.Dynamo.Region,
		Endpoint:        cfg.Dynamo.Endpoint,
		AccessKeyID:     cfg.Dynamo.AccessKeyID,
		SecretAccessKey: cfg.Dynamo.SecretAccessKey,
	})
	if err != nil {
		return nil, err
	}

	recordRepo := repository.NewPricingRecordDynamoRepository(ddb, cfg.Dynamo.PricingTable)
	policyRepo := repository.NewMarginPolicyDynamoRepository(ddb, cfg.Dynamo.PolicyTable)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Dynamo.QuotesTable)
	emailLogRepo := repository.NewEmailLogDynamoRepository(ddb, cfg.Dynamo.EmailLogs)

	mt := metrics.Registry(cfg.Metrics.Namespace)
	clk := clock.System{}
	engine := pricing.NewEngine(log)

	transport, err := email.NewSMTPTransport(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		TLSPolicy: cfg.SMTP.TLSPolicy,
		Timeout:   cfg.SMTP.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("smtp transport: %w", err)
	}
	mailer := email.NewMailer(transport, log,
		email.WithAttemptTimeout(cfg.Email.AttemptTimeout),
		email.WithMetrics(mt),
	)
	renderer, err := email.NewRenderer(email.RendererConfig{
		From:    cfg.Email.From,
		AdminTo: cfg.Email.AdminTo,
		SiteURL: cfg.Email.SiteURL,
	})
	if err != nil {
		return nil, err
	}

	var priceFeed interfaces.IPriceFeed
	if cfg.Feed.URL != "" {
		priceFeed = feed.New(feed.Config{URL: cfg.Feed.URL, APIKey: cfg.Feed.APIKey, Timeout: cfg.Feed.Timeout}, log)
	}

	rdb := cache.New(cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		UseTLS:   cfg.Redis.UseTLS,
	}, log)
	var locker interfaces.ISweepLocker
	if rdb != nil {
		if err := rdb.Ping(ctx); err != nil {
			log.Warn("redis unreachable at startup, sweeps will fail until it recovers", zap.Error(err))
		}
		locker = lock.NewRedisLocker(rdb.Client(), "")
	} else {
		log.Info("REDIS_ADDR not set, reminder sweeps run without a distributed lock")
	}

	notifications := usecase.NewNotificationUseCase(emailLogRepo, mailer, renderer, clk, log, mt, cfg.Email.MaxRetries)
	reminders := usecase.NewReminderUseCase(quoteRepo, emailLogRepo, notifications, locker, clk, log, mt, usecase.ReminderConfig{
		LockTTL: cfg.Scheduler.LockTTL,
	})

	return &Container{
		Config:        cfg,
		Log:           log,
		Metrics:       mt,
		Redis:         rdb,
		Pricing:       usecase.NewPricingUseCase(recordRepo, policyRepo, engine, priceFeed, clk, log, mt),
		Quotes:        usecase.NewQuoteUseCase(quoteRepo, recordRepo, policyRepo, engine, notifications, clk, log, mt),
		Notifications: notifications,
		Reminders:     reminders,
	}, nil
}

// Router builds the HTTP engine over the container's use cases.
func (c *Container) Router() *gin.Engine {
	return routes.New(routes.Handlers{
		Quotes:    handlers.NewQuoteHandler(c.Quotes, c.Log),
		Pricing:   handlers.NewPricingHandler(c.Pricing, c.Log),
		Reminders: handlers.NewReminderHandler(c.Reminders, c.Log),
	}, routes.Options{
		Production: c.Config.IsProduction(),
		CronSecret: c.Config.Server.CronSecret,
	}, c.Log)
}

func (c *Container) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("close redis", zap.Error(err))
		}
	}
}
