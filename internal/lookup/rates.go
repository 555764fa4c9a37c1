package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultRatesURL = "https://open.er-api.com/v6/latest"

var errEmptyCurrencyCode = errors.New("lookup: currency code must not be empty")

// RateClientConfig bundles configuration for a RateClient.
type RateClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger
}

// RateClient fetches exchange rates for a base currency and indexes the
// returned mapping by the requested quote currency.
type RateClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// NewRateClient constructs a RateClient, applying defaults for any unset
// field.
func NewRateClient(cfg RateClientConfig) *RateClient {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultRatesURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateClient{baseURL: baseURL, httpClient: httpClient, timeout: timeout, logger: logger}
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Rate returns the conversion rate from base to quote.
func (c *RateClient) Rate(ctx context.Context, base, quote string) (float64, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	quote = strings.ToUpper(strings.TrimSpace(quote))
	if base == "" || quote == "" {
		return 0, errEmptyCurrencyCode
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(requestCtx, http.MethodGet, c.baseURL+"/"+base, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Warn("rate request failed", zap.String("base", base), zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		c.logger.Warn("rate provider returned non-OK status", zap.Int("status", response.StatusCode))
		return 0, fmt.Errorf("%w: status %d", ErrUnavailable, response.StatusCode)
	}

	var payload ratesResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	rate, ok := payload.Rates[quote]
	if !ok {
		return 0, ErrNotFound
	}
	return rate, nil
}

// Convert applies a rate to an amount.
func Convert(amount, rate float64) float64 {
	return amount * rate
}
