// Package feed pulls wholesale source prices from the upstream price feed.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"buyback_service/internal/domain/entities"

	"go.uber.org/zap"
)

// Config holds price feed client configuration.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client fetches the full price list in one request.
type Client struct {
	log    *zap.Logger
	url    string
	apiKey string
	http   *http.Client
}

// envelope accepts either a bare array or {"data": [...]}.
type envelope struct {
	Data []entities.SourcePriceRow `json:"data"`
}

func New(cfg Config, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		log:    log.Named("feed"),
		url:    strings.TrimSpace(cfg.URL),
		apiKey: cfg.APIKey,
		http:   &http.Client{Timeout: timeout},
	}
}

// FetchPrices downloads the current wholesale price list.
func (c *Client) FetchPrices(ctx context.Context) ([]entities.SourcePriceRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed responded %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	rows, err := decode(body)
	if err != nil {
		return nil, err
	}
	c.log.Info("price feed fetched",
		zap.Int("rows", len(rows)),
		zap.Duration("latency", time.Since(start)),
	)
	return rows, nil
}

func decode(body []byte) ([]entities.SourcePriceRow, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var rows []entities.SourcePriceRow
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, fmt.Errorf("decode feed: %w", err)
		}
		return rows, nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	return env.Data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
