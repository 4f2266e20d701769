package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"irrigation-api/internal/apperrors"
	"irrigation-api/internal/models"
	"irrigation-api/internal/services"
)

// RosterHandler handles candidate-user roster requests
type RosterHandler struct {
	roster services.RosterService
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(roster services.RosterService) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// RosterResponse wraps the filtered, enriched user list
type RosterResponse struct {
	Users []models.RosterEntry `json:"users"`
}

// CandidateUsers lists every provider identity that is neither internal nor
// already a crop admin, with each user's crop list attached. A missing or
// malformed Authorization header is 401; a token that fails verification is
// 403.
func (h *RosterHandler) CandidateUsers(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if authHeader == "" || !ok || token == "" {
		respondError(c, apperrors.AuthMissing("authorization header with bearer token is required"))
		return
	}

	users, err := h.roster.CandidateUsers(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RosterResponse{Users: users})
}
