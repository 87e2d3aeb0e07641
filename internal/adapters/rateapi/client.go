package rateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/abishekraja/currency_converter_app/internal/core/domain"
	portsprov "github.com/abishekraja/currency_converter_app/internal/core/ports/providers"
	"github.com/cenkalti/backoff/v4"
)

// Client fetches exchange rates from the exchangerate-api.com v6 endpoint.
// Transient failures are retried with a fixed delay up to a bounded attempt
// count; responses the provider itself rejects are not retried.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	maxAttempts int
	retryDelay  time.Duration
	logger      *slog.Logger
}

// latestRatesResponse is the provider payload for a latest-rates request.
// See https://www.exchangerate-api.com/docs/standard-requests
type latestRatesResponse struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	ErrorType       string             `json:"error-type,omitempty"`
}

// Options configures a Client.
type Options struct {
	BaseURL     string
	APIKey      string
	HTTPTimeout time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
	Logger      *slog.Logger
}

// NewClient creates a rate API client.
func NewClient(opts Options) *Client {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Client{
		baseURL:     opts.BaseURL,
		apiKey:      opts.APIKey,
		httpClient:  &http.Client{Timeout: opts.HTTPTimeout},
		maxAttempts: opts.MaxAttempts,
		retryDelay:  opts.RetryDelay,
		logger:      opts.Logger,
	}
}

// Ensure implementation matches interface
var _ portsprov.RateProvider = (*Client)(nil)

// FetchLatestRates retrieves the full rate table for one base currency.
func (c *Client) FetchLatestRates(ctx context.Context, baseCode string) (*domain.RateTable, error) {
	url := fmt.Sprintf("%s/latest/%s", c.baseURL, baseCode)
	if c.apiKey != "" {
		url = fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, baseCode)
	}

	var table *domain.RateTable
	operation := func() error {
		var err error
		table, err = c.fetchOnce(ctx, url)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryDelay), uint64(c.maxAttempts-1)),
		ctx,
	)

	notify := func(err error, wait time.Duration) {
		c.logger.Warn("Rate fetch failed, retrying",
			slog.String("base", baseCode),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, fmt.Errorf("failed to fetch rates for %s: %w", baseCode, err)
	}
	return table, nil
}

// fetchOnce performs a single request. Client-side (4xx) and provider-level
// rejections are wrapped in backoff.Permanent so the retry loop stops.
func (c *Client) fetchOnce(ctx context.Context, url string) (*domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach rate provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("rate provider returned status %d: %s", resp.StatusCode, string(body))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	var apiResp latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}

	if apiResp.Result != "success" {
		return nil, backoff.Permanent(fmt.Errorf("rate provider returned result=%s error-type=%s", apiResp.Result, apiResp.ErrorType))
	}

	return &domain.RateTable{
		BaseCode:  apiResp.BaseCode,
		Rates:     apiResp.ConversionRates,
		FetchedAt: time.Now(),
	}, nil
}
