package services

import (
	"context"

	"irrigation-api/internal/models"
)

// TokenService mints short-lived custom credentials
type TokenService interface {
	IssueToken(ctx context.Context, req *IssueTokenRequest) (*TokenResponse, error)
}

// ClaimService manages the elevated crop-admin marker
type ClaimService interface {
	GrantCropAdmin(ctx context.Context, req *GrantCropAdminRequest) error
}

// ForecastService resolves an address to a short-range precipitation forecast
type ForecastService interface {
	ForecastForAddress(ctx context.Context, req *ForecastRequest) ([]models.ForecastRecord, error)
}

// RosterService enumerates, filters and enriches provider identities
type RosterService interface {
	CandidateUsers(ctx context.Context, idToken string) ([]models.RosterEntry, error)
}

// IssueTokenRequest carries the identifier to mint a token for
type IssueTokenRequest struct {
	UID string `validate:"required"`
}

// TokenResponse carries a freshly minted custom token
type TokenResponse struct {
	Token string `json:"token"`
}

// GrantCropAdminRequest carries the identifier to elevate
type GrantCropAdminRequest struct {
	UID string `validate:"required"`
}

// ForecastRequest carries the free-text address to resolve
type ForecastRequest struct {
	Address string `validate:"required"`
}

// IdentityProvider is the identity-provider surface consumed by the services.
// ListUsers returns one page of identities and the continuation token for the
// next page; an empty token means the listing is exhausted.
type IdentityProvider interface {
	CustomToken(ctx context.Context, uid string) (string, error)
	SetCustomUserClaims(ctx context.Context, uid string, claims map[string]interface{}) error
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
	ListUsers(ctx context.Context, pageToken string, pageSize int) ([]models.Identity, string, error)
}

// CropStore reads the raw crops value stored for a user. The returned value
// is whatever shape the database holds; normalization is the caller's job.
type CropStore interface {
	Crops(ctx context.Context, uid string) (interface{}, error)
}

// Geocoder resolves a free-text address to coordinates
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Coordinates, error)
}

// ForecastProvider fetches the daily precipitation-probability forecast
type ForecastProvider interface {
	DailyPrecipitation(ctx context.Context, coords models.Coordinates) ([]models.ForecastRecord, error)
}
