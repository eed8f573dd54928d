package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Dynamo    DynamoConfig
	SMTP      SMTPConfig
	Email     EmailConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
	Feed      FeedConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	AppEnv     string
	Port       int
	CronSecret string
}

type LogConfig struct {
	Level    string
	Encoding string
}

type DynamoConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string

	PricingTable string
	PolicyTable  string
	QuotesTable  string
	EmailLogs    string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// TLSPolicy is one of "mandatory", "opportunistic" or "none".
	TLSPolicy string
	Timeout   time.Duration
}

type EmailConfig struct {
	From           string
	AdminTo        string
	SiteURL        string
	MaxRetries     int
	AttemptTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	UseTLS   bool
}

type SchedulerConfig struct {
	// SweepInterval enables the in-process reminder loop when greater than zero.
	SweepInterval time.Duration
	SweepTimeout  time.Duration
	LockTTL       time.Duration
}

type FeedConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type MetricsConfig struct {
	Namespace string
}

// Load reads the optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			AppEnv:     getenv("APP_ENV", "development"),
			Port:       getenvInt("PORT", 8080),
			CronSecret: strings.TrimSpace(getenv("CRON_SECRET", "")),
		},
		Log: LogConfig{
			Level:    getenv("LOG_LEVEL", "info"),
			Encoding: getenv("LOG_ENCODING", "json"),
		},
		Dynamo: DynamoConfig{
			Region:          getenv("AWS_REGION", "us-east-1"),
			Endpoint:        strings.TrimSpace(getenv("DYNAMODB_ENDPOINT", "")),
			AccessKeyID:     getenv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getenv("AWS_SECRET_ACCESS_KEY", ""),

			PricingTable: getenv("PRICING_TABLE", "pricing_records"),
			PolicyTable:  getenv("MARGIN_POLICY_TABLE", "margin_policy"),
			QuotesTable:  getenv("QUOTES_TABLE", "quotes"),
			EmailLogs:    getenv("EMAIL_LOGS_TABLE", "email_logs"),
		},
		SMTP: SMTPConfig{
			Host:      getenv("SMTP_HOST", "localhost"),
			Port:      getenvInt("SMTP_PORT", 587),
			Username:  getenv("SMTP_USER", ""),
			Password:  getenv("SMTP_PASSWORD", ""),
			TLSPolicy: strings.ToLower(getenv("SMTP_TLS_POLICY", "opportunistic")),
			Timeout:   getenvDuration("SMTP_TIMEOUT", 15*time.Second),
		},
		Email: EmailConfig{
			From:           getenv("EMAIL_FROM", "quotes@example.com"),
			AdminTo:        getenv("ADMIN_EMAIL", "admin@example.com"),
			SiteURL:        strings.TrimRight(getenv("SITE_URL", "http://localhost:3000"), "/"),
			MaxRetries:     getenvInt("EMAIL_MAX_RETRIES", 3),
			AttemptTimeout: getenvDuration("EMAIL_ATTEMPT_TIMEOUT", 20*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", ""),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
			UseTLS:   getenvBool("REDIS_TLS", false),
		},
		Scheduler: SchedulerConfig{
			SweepInterval: getenvDuration("REMINDER_SWEEP_INTERVAL", 0),
			SweepTimeout:  getenvDuration("REMINDER_SWEEP_TIMEOUT", 10*time.Minute),
			LockTTL:       getenvDuration("REMINDER_LOCK_TTL", 15*time.Minute),
		},
		Feed: FeedConfig{
			URL:     strings.TrimSpace(getenv("PRICE_FEED_URL", "")),
			APIKey:  getenv("PRICE_FEED_API_KEY", ""),
			Timeout: getenvDuration("PRICE_FEED_TIMEOUT", 30*time.Second),
		},
		Metrics: MetricsConfig{
			Namespace: getenv("METRICS_NAMESPACE", "buyback"),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvBool(key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch value {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

func getenvDuration(key string, def time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
