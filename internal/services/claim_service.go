package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"irrigation-api/internal/apperrors"
	"irrigation-api/internal/models"
)

// claimService implements the ClaimService interface
type claimService struct {
	provider  IdentityProvider
	validator *validator.Validate
}

// NewClaimService creates a new claim service instance
func NewClaimService(provider IdentityProvider) ClaimService {
	return &claimService{
		provider:  provider,
		validator: validator.New(),
	}
}

// GrantCropAdmin sets the cropAdmin custom claim on the identity. Setting
// the claim twice is a no-op change, so the operation is idempotent.
func (s *claimService) GrantCropAdmin(ctx context.Context, req *GrantCropAdminRequest) error {
	if req == nil || s.validator.Struct(req) != nil {
		return apperrors.Validation("missing 'uid' in request")
	}

	claims := map[string]interface{}{models.CropAdminClaim: true}
	if err := s.provider.SetCustomUserClaims(ctx, req.UID, claims); err != nil {
		return apperrors.Upstream(err, "failed to set custom claims")
	}

	logrus.WithFields(logrus.Fields{
		"uid": req.UID,
	}).Info("Crop admin claim granted")

	return nil
}
