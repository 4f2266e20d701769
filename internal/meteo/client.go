// Package meteo fetches daily precipitation-probability forecasts from the
// Open-Meteo API through a caching, retrying HTTP transport.
package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/hashicorp/go-retryablehttp"

	"irrigation-api/internal/apperrors"
	"irrigation-api/internal/models"
)

// Client is an Open-Meteo forecast client
type Client struct {
	baseURL    string
	days       int
	httpClient *http.Client
}

// NewClient creates a forecast client. Responses are cached in memory for
// cacheTTL and requests are retried up to retryMax times with exponential
// backoff; both happen at the transport layer, below any caller.
func NewClient(baseURL string, days int, cacheTTL time.Duration, retryMax int) *Client {
	if days <= 0 {
		days = 1
	}

	cacheTransport := httpcache.NewMemoryCacheTransport()
	cacheTransport.Transport = &maxAgeTransport{ttl: cacheTTL, next: http.DefaultTransport}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.Logger = nil
	retryClient.HTTPClient = &http.Client{Transport: cacheTransport}

	return &Client{
		baseURL:    baseURL,
		days:       days,
		httpClient: retryClient.StandardClient(),
	}
}

type forecastResponse struct {
	Daily struct {
		Time                        []string  `json:"time"`
		PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// DailyPrecipitation fetches one record per daily bucket for the coordinates
func (c *Client) DailyPrecipitation(ctx context.Context, coords models.Coordinates) ([]models.ForecastRecord, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("daily", "precipitation_probability_max")
	query.Set("forecast_days", strconv.Itoa(c.days))
	query.Set("timezone", "UTC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+query.Encode(), nil)
	if err != nil {
		return nil, apperrors.Upstream(err, "forecast request failed")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Upstream(err, "forecast request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Upstream(
			fmt.Errorf("unexpected status %d", resp.StatusCode), "forecast request failed")
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.Upstream(err, "failed to decode forecast response")
	}

	buckets := len(payload.Daily.Time)
	if len(payload.Daily.PrecipitationProbabilityMax) < buckets {
		buckets = len(payload.Daily.PrecipitationProbabilityMax)
	}

	records := make([]models.ForecastRecord, 0, buckets)
	for i := 0; i < buckets; i++ {
		date, err := time.ParseInLocation("2006-01-02", payload.Daily.Time[i], time.UTC)
		if err != nil {
			return nil, apperrors.Upstream(err, "invalid date in forecast response")
		}
		records = append(records, models.ForecastRecord{
			Date:                        date,
			PrecipitationProbabilityMax: payload.Daily.PrecipitationProbabilityMax[i],
		})
	}
	return records, nil
}
