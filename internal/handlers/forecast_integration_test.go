package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"irrigation-api/internal/geocode"
	"irrigation-api/internal/meteo"
	"irrigation-api/internal/services"
)

// End-to-end path through the real geocoding and forecast clients, with
// httptest servers standing in for Nominatim and Open-Meteo.
func TestForecastGatewayEndToEnd(t *testing.T) {
	geocoder := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "10 Downing Street, London" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`[{"lat": "51.5034", "lon": "-0.1276"}]`))
	}))
	defer geocoder.Close()

	forecaster := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("latitude") != "51.5034" {
			http.Error(w, "wrong coordinates", http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{
			"daily": {
				"time": ["2024-01-01"],
				"precipitation_probability_max": [42.0]
			}
		}`))
	}))
	defer forecaster.Close()

	svc := services.NewForecastService(
		geocode.NewClient(geocoder.URL, "irrigation-api/1.0", 0),
		meteo.NewClient(forecaster.URL, 1, time.Hour, 0),
	)

	router := gin.New()
	SetupRoutes(router, &RouterConfig{
		TokenService:    &fakeTokenService{},
		ClaimService:    &fakeClaimService{},
		ForecastService: svc,
		RosterService:   &fakeRosterService{},
	})

	w := doRequest(router, "POST", "/api/v1/forecast", `{"address": "10 Downing Street, London"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	want := `[{"date":"2024-01-01T00:00:00Z","precipitation_probability_max":42}]`
	if strings.TrimSpace(w.Body.String()) != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	w = doRequest(router, "POST", "/api/v1/forecast", `{"address": "nowhere at all"}`, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unresolvable address: status = %d, want 404", w.Code)
	}
}
