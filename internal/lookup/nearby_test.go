package lookup

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestNearbySearchComputesLocalDistances(t *testing.T) {
	var capturedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		values, err := url.ParseQuery(string(body))
		if err != nil {
			t.Errorf("failed to parse form body: %v", err)
		}
		capturedQuery = values.Get("data")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements":[
			{"lat":35.0116,"lon":135.7681,"tags":{"name":"Corner Store"}},
			{"lat":35.0120,"lon":135.7685,"tags":{}}
		]}`))
	}))
	defer server.Close()

	client := NewNearbyClient(NearbyClientConfig{BaseURL: server.URL})
	places, err := client.Search(context.Background(), 35.0116, 135.7681, 500, "convenience")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("expected 2 places, got %#v", places)
	}
	if places[0].Name != "Corner Store" || places[0].DistanceMeters != 0 {
		t.Fatalf("unexpected first place: %#v", places[0])
	}
	if places[1].Name != "" {
		t.Fatalf("untagged nodes must carry an empty name: %#v", places[1])
	}
	if places[1].DistanceMeters <= 0 || places[1].DistanceMeters > 200 {
		t.Fatalf("unexpected distance for nearby node: %d", places[1].DistanceMeters)
	}
	if !strings.Contains(capturedQuery, `"shop"="convenience"`) {
		t.Fatalf("query must carry the category selector: %s", capturedQuery)
	}
	if !strings.Contains(capturedQuery, "around:500") {
		t.Fatalf("query must carry the radius: %s", capturedQuery)
	}
}

func TestNearbySearchDefaultsRadius(t *testing.T) {
	var capturedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		values, _ := url.ParseQuery(string(body))
		capturedQuery = values.Get("data")
		_, _ = w.Write([]byte(`{"elements":[]}`))
	}))
	defer server.Close()

	client := NewNearbyClient(NearbyClientConfig{BaseURL: server.URL})
	if _, err := client.Search(context.Background(), 35.0, 135.0, 0, "cafe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(capturedQuery, "around:1000") {
		t.Fatalf("zero radius must fall back to the default: %s", capturedQuery)
	}
}

func TestNearbySearchRejectsUnknownCategory(t *testing.T) {
	client := NewNearbyClient(NearbyClientConfig{BaseURL: "http://unused.invalid"})
	if _, err := client.Search(context.Background(), 35.0, 135.0, 500, "volcano"); err == nil {
		t.Fatalf("unknown category must be rejected")
	}
}

func TestNearbySearchProviderFailureIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewNearbyClient(NearbyClientConfig{BaseURL: server.URL})
	_, err := client.Search(context.Background(), 35.0, 135.0, 500, "station")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
