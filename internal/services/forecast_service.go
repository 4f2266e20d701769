package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"irrigation-api/internal/apperrors"
	"irrigation-api/internal/models"
)

// forecastService implements the ForecastService interface
type forecastService struct {
	geocoder  Geocoder
	forecasts ForecastProvider
	validator *validator.Validate
}

// NewForecastService creates a new forecast service instance
func NewForecastService(geocoder Geocoder, forecasts ForecastProvider) ForecastService {
	return &forecastService{
		geocoder:  geocoder,
		forecasts: forecasts,
		validator: validator.New(),
	}
}

// ForecastForAddress geocodes the address and fetches the daily
// precipitation-probability forecast for the resolved coordinates. The two
// upstream calls are sequential; a forecast failure needs no compensation
// since geocoding has no durable side effect.
func (s *forecastService) ForecastForAddress(ctx context.Context, req *ForecastRequest) ([]models.ForecastRecord, error) {
	if req == nil || s.validator.Struct(req) != nil {
		return nil, apperrors.Validation("missing 'address' in request")
	}

	coords, err := s.geocoder.Geocode(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	records, err := s.forecasts.DailyPrecipitation(ctx, coords)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"latitude":  coords.Latitude,
		"longitude": coords.Longitude,
		"records":   len(records),
	}).Debug("Forecast resolved")

	return records, nil
}
