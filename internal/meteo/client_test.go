package meteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"irrigation-api/internal/apperrors"
	"irrigation-api/internal/models"
)

const forecastBody = `{
	"daily": {
		"time": ["2024-01-01"],
		"precipitation_probability_max": [42.0]
	}
}`

func TestDailyPrecipitationReshapesResponse(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"latitude":      r.URL.Query().Get("latitude"),
			"longitude":     r.URL.Query().Get("longitude"),
			"daily":         r.URL.Query().Get("daily"),
			"forecast_days": r.URL.Query().Get("forecast_days"),
		}
		w.Write([]byte(forecastBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, time.Hour, 0)
	records, err := client.DailyPrecipitation(context.Background(), models.Coordinates{Latitude: 51.5034, Longitude: -0.1276})
	if err != nil {
		t.Fatalf("DailyPrecipitation returned error: %v", err)
	}

	if gotQuery["latitude"] != "51.5034" || gotQuery["longitude"] != "-0.1276" {
		t.Errorf("unexpected coordinates in query: %v", gotQuery)
	}
	if gotQuery["daily"] != "precipitation_probability_max" || gotQuery["forecast_days"] != "1" {
		t.Errorf("unexpected forecast parameters: %v", gotQuery)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !records[0].Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, records[0].Date)
	}
	if records[0].PrecipitationProbabilityMax != 42.0 {
		t.Errorf("unexpected probability: %v", records[0].PrecipitationProbabilityMax)
	}
}

func TestDailyPrecipitationMultipleBuckets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"daily": {
				"time": ["2024-01-01", "2024-01-02", "2024-01-03"],
				"precipitation_probability_max": [10.0, 20.0, 30.0]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 3, time.Hour, 0)
	records, err := client.DailyPrecipitation(context.Background(), models.Coordinates{Latitude: 1, Longitude: 2})
	if err != nil {
		t.Fatalf("DailyPrecipitation returned error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[2].PrecipitationProbabilityMax != 30.0 {
		t.Errorf("unexpected last record: %+v", records[2])
	}
}

func TestDailyPrecipitationCachesResponses(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(forecastBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, time.Hour, 0)
	coords := models.Coordinates{Latitude: 51.5034, Longitude: -0.1276}

	for i := 0; i < 3; i++ {
		if _, err := client.DailyPrecipitation(context.Background(), coords); err != nil {
			t.Fatalf("call %d returned error: %v", i+1, err)
		}
	}

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected a single origin hit with caching, got %d", got)
	}
}

func TestDailyPrecipitationRetriesServerErrors(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(forecastBody))
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, time.Hour, 5)
	records, err := client.DailyPrecipitation(context.Background(), models.Coordinates{Latitude: 1, Longitude: 2})
	if err != nil {
		t.Fatalf("expected retries to recover, got error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record after retry, got %d", len(records))
	}
	if atomic.LoadInt32(&hits) != 3 {
		t.Errorf("expected 3 origin hits, got %d", hits)
	}
}

func TestDailyPrecipitationExhaustedRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, 1, time.Hour, 1)
	_, err := client.DailyPrecipitation(context.Background(), models.Coordinates{Latitude: 1, Longitude: 2})
	if !apperrors.IsKind(err, apperrors.KindUpstream) {
		t.Errorf("expected upstream error after exhausted retries, got %v", err)
	}
}
