package lookup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRateIndexesQuoteCurrency(t *testing.T) {
	var capturedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rates":{"USD":0.0065,"EUR":0.0060}}`))
	}))
	defer server.Close()

	client := NewRateClient(RateClientConfig{BaseURL: server.URL})
	rate, err := client.Rate(context.Background(), "jpy", "usd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != 0.0065 {
		t.Fatalf("unexpected rate: %f", rate)
	}
	if !strings.HasSuffix(capturedPath, "/JPY") {
		t.Fatalf("base currency must be uppercased in the path: %s", capturedPath)
	}
}

func TestRateMissingQuoteIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates":{"USD":0.0065}}`))
	}))
	defer server.Close()

	client := NewRateClient(RateClientConfig{BaseURL: server.URL})
	_, err := client.Rate(context.Background(), "JPY", "XYZ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRateProviderFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewRateClient(RateClientConfig{BaseURL: server.URL})
	_, err := client.Rate(context.Background(), "JPY", "USD")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestRateRejectsEmptyCodes(t *testing.T) {
	client := NewRateClient(RateClientConfig{BaseURL: "http://unused.invalid"})
	if _, err := client.Rate(context.Background(), "", "USD"); err == nil {
		t.Fatalf("empty base must be rejected")
	}
	if _, err := client.Rate(context.Background(), "JPY", " "); err == nil {
		t.Fatalf("empty quote must be rejected")
	}
}

func TestConvert(t *testing.T) {
	if got := Convert(10000, 0.0065); got != 65 {
		t.Fatalf("unexpected conversion: %f", got)
	}
}
