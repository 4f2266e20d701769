package server

import (
	"context"
	"fmt"

	"irrigation-api/internal/config"
	"irrigation-api/internal/geocode"
	"irrigation-api/internal/identity"
	"irrigation-api/internal/meteo"
	"irrigation-api/internal/services"
)

// Container holds all application dependencies. It is constructed exactly
// once per process, at startup, and passed explicitly into every entrypoint;
// handlers never initialize provider clients themselves.
type Container struct {
	Config          *config.Config
	TokenService    services.TokenService
	ClaimService    services.ClaimService
	ForecastService services.ForecastService
	RosterService   services.RosterService

	Identity *identity.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	idClient, err := identity.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	geocoder := geocode.NewClient(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.Geocoder.MinInterval)
	forecaster := meteo.NewClient(cfg.Forecast.BaseURL, cfg.Forecast.Days, cfg.Forecast.CacheTTL, cfg.Forecast.RetryMax)

	return &Container{
		Config:          cfg,
		TokenService:    services.NewTokenService(idClient),
		ClaimService:    services.NewClaimService(idClient),
		ForecastService: services.NewForecastService(geocoder, forecaster),
		RosterService: services.NewRosterService(
			idClient, idClient,
			cfg.Roster.InternalDomainSuffix,
			cfg.Roster.PageSize,
		),
		Identity: idClient,
	}, nil
}
