package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"irrigation-api/internal/apperrors"
	"irrigation-api/internal/services"
)

// ClaimHandler handles crop-admin role assignment requests
type ClaimHandler struct {
	claims services.ClaimService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claims services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claims: claims}
}

// MessageResponse carries a confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// GrantCropAdmin sets the elevated marker on the identity from the JSON
// body. POST only; the router rejects other methods with 405.
func (h *ClaimHandler) GrantCropAdmin(c *gin.Context) {
	var body struct {
		UID string `json:"uid"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, apperrors.Validation("invalid request body"))
		return
	}

	req := &services.GrantCropAdminRequest{UID: body.UID}
	if err := h.claims.GrantCropAdmin(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Message: body.UID + " is now a crop admin",
	})
}
