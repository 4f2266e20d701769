// Package geocode resolves free-text addresses through the Nominatim search
// API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"irrigation-api/internal/apperrors"
	"irrigation-api/internal/models"
)

// Client is a Nominatim search client. The public service requires an
// identifying User-Agent and at most one request per second; the limiter
// enforces the courtesy interval before every call, including the first.
type Client struct {
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	httpClient *http.Client
}

// NewClient creates a geocoding client. A zero minInterval disables the
// courtesy limiter (used by tests).
func NewClient(baseURL, userAgent string, minInterval time.Duration) *Client {
	var limiter *rate.Limiter
	if minInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(minInterval), 1)
		// Spend the initial burst so the first call waits the full interval too
		limiter.AllowN(time.Now(), 1)
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    limiter,
		httpClient: &http.Client{},
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves the address to coordinates. Zero results is a not-found
// condition; transport and decoding failures are upstream errors carrying
// the underlying error text.
func (c *Client) Geocode(ctx context.Context, address string) (models.Coordinates, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return models.Coordinates{}, apperrors.Upstream(err, "geocoding request aborted")
		}
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return models.Coordinates{}, apperrors.Upstream(err, "geocoding request failed")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Coordinates{}, apperrors.Upstream(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, apperrors.Upstream(
			fmt.Errorf("unexpected status %d", resp.StatusCode), "geocoding request failed")
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.Coordinates{}, apperrors.Upstream(err, "failed to decode geocoding response")
	}
	if len(results) == 0 {
		return models.Coordinates{}, apperrors.NotFound("no results for address %q", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.Coordinates{}, apperrors.Upstream(err, "invalid latitude in geocoding response")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.Coordinates{}, apperrors.Upstream(err, "invalid longitude in geocoding response")
	}

	return models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
