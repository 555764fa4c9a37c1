// Package lookup holds clients for the three external providers the
// planner consumes: address geocoding, currency exchange rates and
// nearby point-of-interest search. The providers are opaque
// collaborators; only their request and response shapes matter here,
// and a failing provider never touches planner state.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultGeocodeURL    = "https://nominatim.openstreetmap.org/search"
	defaultLookupTimeout = 10 * time.Second
)

var (
	// ErrUnavailable reports a provider that could not be reached or whose
	// response could not be parsed.
	ErrUnavailable = errors.New("lookup: provider unavailable")
	// ErrNotFound reports a well-formed response with no usable result.
	ErrNotFound = errors.New("lookup: no result")

	errEmptyAddress = errors.New("lookup: address must not be empty")
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeocoderConfig bundles configuration for a Geocoder.
type GeocoderConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger
}

// Geocoder resolves free-text addresses to coordinates through a
// Nominatim-compatible endpoint, consuming only the first-ranked result.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// NewGeocoder constructs a Geocoder, applying defaults for any unset field.
func NewGeocoder(cfg GeocoderConfig) *Geocoder {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultGeocodeURL
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
	return &Geocoder{baseURL: baseURL, httpClient: httpClient, timeout: timeout, logger: logger}
}

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves an address to the coordinates of its first-ranked match.
func (g *Geocoder) Geocode(ctx context.Context, address string) (Coordinates, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return Coordinates{}, errEmptyAddress
	}

	requestCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", trimmed)
	query.Set("limit", "1")

	request, err := http.NewRequestWithContext(requestCtx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	response, err := g.httpClient.Do(request)
	if err != nil {
		g.logger.Warn("geocode request failed", zap.Error(err))
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		g.logger.Warn("geocode provider returned non-OK status", zap.Int("status", response.StatusCode))
		return Coordinates{}, fmt.Errorf("%w: status %d", ErrUnavailable, response.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(response.Body).Decode(&results); err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(results) == 0 {
		return Coordinates{}, ErrNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return Coordinates{}, fmt.Errorf("%w: malformed coordinates", ErrUnavailable)
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}
