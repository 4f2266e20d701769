package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"irrigation-api/internal/apperrors"
	"irrigation-api/internal/models"
)

// rosterService implements the RosterService interface
type rosterService struct {
	provider       IdentityProvider
	crops          CropStore
	internalSuffix string
	pageSize       int
}

// NewRosterService creates a new roster service instance
func NewRosterService(provider IdentityProvider, crops CropStore, internalSuffix string, pageSize int) RosterService {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &rosterService{
		provider:       provider,
		crops:          crops,
		internalSuffix: internalSuffix,
		pageSize:       pageSize,
	}
}

// CandidateUsers verifies the caller's token, then walks every identity known
// to the provider page by page, dropping internal-domain accounts and
// identities already holding the crop-admin marker, and attaches each
// survivor's crop list. Only one provider page is held in memory at a time.
// Any mid-loop failure aborts the whole enumeration; partial results are
// discarded.
func (s *rosterService) CandidateUsers(ctx context.Context, idToken string) ([]models.RosterEntry, error) {
	if _, err := s.provider.VerifyIDToken(ctx, idToken); err != nil {
		return nil, apperrors.AuthInvalid(err)
	}

	entries := []models.RosterEntry{}
	pageToken := ""
	for {
		identities, nextToken, err := s.provider.ListUsers(ctx, pageToken, s.pageSize)
		if err != nil {
			return nil, apperrors.Upstream(err, "failed to list users")
		}

		for _, identity := range identities {
			if strings.HasSuffix(identity.Email, s.internalSuffix) {
				continue
			}
			if identity.IsCropAdmin() {
				continue
			}

			raw, err := s.crops.Crops(ctx, identity.UID)
			if err != nil {
				return nil, apperrors.Upstream(err, "failed to read crops for user %s", identity.UID)
			}

			entries = append(entries, models.RosterEntry{
				UID:         identity.UID,
				Email:       identity.Email,
				DisplayName: identity.DisplayName,
				Crops:       models.NormalizeCrops(raw),
			})
		}

		if nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	logrus.WithFields(logrus.Fields{
		"candidates": len(entries),
	}).Debug("Roster assembled")

	return entries, nil
}
