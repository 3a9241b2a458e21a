package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/manzoorshoro/crypto-market-report/internal/domain"
	"github.com/manzoorshoro/crypto-market-report/internal/domain/interfaces"
	"github.com/manzoorshoro/crypto-market-report/pkg/config"
)

const userAgent = "crypto-market-report/1.0"

type coinGeckoClient struct {
	baseURL    string
	apiKey     string
	vsCurrency string
	perPage    int
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     zerolog.Logger
}

func NewCoinGeckoClient(cfg config.CoinGeckoConfig, report config.ReportConfig, logger zerolog.Logger) interfaces.MarketsClient {
	return &coinGeckoClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		vsCurrency: report.VsCurrency,
		perPage:    report.PerPage,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		logger:     logger,
	}
}

// Markets returns one page of coin listings sorted by descending market cap,
// with 24h and 7d change percentages attached.
func (c *coinGeckoClient) Markets(ctx context.Context, page int) ([]domain.CoinRecord, error) {
	params := url.Values{}
	params.Set("vs_currency", c.vsCurrency)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(c.perPage))
	params.Set("page", strconv.Itoa(page))
	params.Set("price_change_percentage", "24h,7d")
	params.Set("sparkline", "false")

	endpoint := "/coins/markets?" + params.Encode()

	var records []domain.CoinRecord
	if err := c.makeRequest(ctx, http.MethodGet, endpoint, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch markets page %d: %w", page, err)
	}

	return records, nil
}

// makeRequest makes an HTTP request with retries. With maxRetries set to 0
// (the default) a request is attempted exactly once.
func (c *coinGeckoClient) makeRequest(ctx context.Context, method, endpoint string, response interface{}) error {
	fullURL := c.baseURL + endpoint

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(1<<(attempt-1))): // Exponential backoff
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
		if err != nil {
			lastErr = fmt.Errorf("failed to create request: %w", err)
			continue
		}

		req.Header.Set("User-Agent", userAgent)
		if c.apiKey != "" {
			req.Header.Set("x-cg-demo-api-key", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			log.Warn().Err(err).Int("attempt", attempt+1).Str("url", fullURL).Msg("CoinGecko request failed")
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			err = json.NewDecoder(resp.Body).Decode(response)
			resp.Body.Close()
			if err != nil {
				lastErr = fmt.Errorf("failed to decode response: %w", err)
				continue
			}
			return nil
		}

		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2<<10))
		resp.Body.Close()

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error (status %d): %s", resp.StatusCode, string(body))
			log.Warn().Int("status", resp.StatusCode).Int("attempt", attempt+1).Str("url", fullURL).Msg("CoinGecko server error")
			continue
		}

		// Client errors (4xx) - don't retry
		return fmt.Errorf("client error (status %d): %s", resp.StatusCode, string(body))
	}

	if c.maxRetries > 0 {
		log.Error().Err(lastErr).Str("url", fullURL).Int("max_retries", c.maxRetries).Msg("CoinGecko request failed after all retries")
		return fmt.Errorf("request failed after %d retries: %w", c.maxRetries, lastErr)
	}
	return lastErr
}
