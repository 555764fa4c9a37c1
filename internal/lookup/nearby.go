package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tavinote/backend/internal/planner"
	"go.uber.org/zap"
)

const (
	defaultOverpassURL  = "https://overpass-api.de/api/interpreter"
	defaultNearbyRadius = 1000
	nearbyResultLimit   = 20
)

var errUnknownNearbyCategory = errors.New("lookup: unknown nearby category")

// Overpass tag selectors per supported category.
var nearbyTags = map[string]string{
	"convenience": `["shop"="convenience"]`,
	"station":     `["railway"="station"]`,
	"restaurant":  `["amenity"="restaurant"]`,
	"cafe":        `["amenity"="cafe"]`,
	"hospital":    `["amenity"="hospital"]`,
	"atm":         `["amenity"="atm"]`,
	"toilet":      `["amenity"="toilets"]`,
}

// NearbyPlace is one point of interest around the query coordinate.
// DistanceMeters is computed locally with the planner's haversine function,
// never taken from the provider.
type NearbyPlace struct {
	Name           string  `json:"name,omitempty"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	DistanceMeters int     `json:"distanceMeters"`
}

// NearbyClientConfig bundles configuration for a NearbyClient.
type NearbyClientConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger
}

// NearbyClient searches points of interest through an Overpass-compatible
// endpoint.
type NearbyClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// NewNearbyClient constructs a NearbyClient, applying defaults for any
// unset field.
func NewNearbyClient(cfg NearbyClientConfig) *NearbyClient {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultOverpassURL
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
	return &NearbyClient{baseURL: baseURL, httpClient: httpClient, timeout: timeout, logger: logger}
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// Search finds points of interest of the given category around a
// coordinate, ordered as returned by the provider, with local straight-line
// distances attached. A non-positive radius falls back to the default.
func (c *NearbyClient) Search(ctx context.Context, lat, lon float64, radiusMeters int, category string) ([]NearbyPlace, error) {
	tag, ok := nearbyTags[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		return nil, errUnknownNearbyCategory
	}
	if radiusMeters <= 0 {
		radiusMeters = defaultNearbyRadius
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := fmt.Sprintf("[out:json];node%s(around:%d,%f,%f);out body %d;",
		tag, radiusMeters, lat, lon, nearbyResultLimit)
	form := url.Values{}
	form.Set("data", query)

	request, err := http.NewRequestWithContext(requestCtx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Warn("nearby request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		c.logger.Warn("nearby provider returned non-OK status", zap.Int("status", response.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, response.StatusCode)
	}

	var payload overpassResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	places := make([]NearbyPlace, 0, len(payload.Elements))
	for _, element := range payload.Elements {
		distance := planner.HaversineDistance(lat, lon, element.Lat, element.Lon)
		places = append(places, NearbyPlace{
			Name:           element.Tags["name"],
			Lat:            element.Lat,
			Lon:            element.Lon,
			DistanceMeters: int(math.Round(distance)),
		})
	}
	return places, nil
}
