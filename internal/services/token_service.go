package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"irrigation-api/internal/apperrors"
)

// tokenService implements the TokenService interface
type tokenService struct {
	provider  IdentityProvider
	validator *validator.Validate
}

// NewTokenService creates a new token service instance
func NewTokenService(provider IdentityProvider) TokenService {
	return &tokenService{
		provider:  provider,
		validator: validator.New(),
	}
}

// IssueToken mints a custom token for the given uid. Tokens are never cached
// or reused; every call is a fresh provider mint.
func (s *tokenService) IssueToken(ctx context.Context, req *IssueTokenRequest) (*TokenResponse, error) {
	if req == nil || s.validator.Struct(req) != nil {
		return nil, apperrors.Validation("missing 'uid' in request")
	}

	token, err := s.provider.CustomToken(ctx, req.UID)
	if err != nil {
		return nil, apperrors.Upstream(err, "failed to mint custom token")
	}

	logrus.WithFields(logrus.Fields{
		"uid": req.UID,
	}).Debug("Custom token minted")

	return &TokenResponse{Token: token}, nil
}
