package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"irrigation-api/internal/services"
)

// TokenHandler handles custom token issuance requests
type TokenHandler struct {
	tokens services.TokenService
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(tokens services.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// IssueToken mints a custom token for the uid given in the JSON body or, as
// a fallback, the query string. Accepts GET and POST.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var body struct {
		UID string `json:"uid"`
	}
	// A missing or non-JSON body is fine; the query string may carry the uid
	_ = c.ShouldBindJSON(&body)

	uid := body.UID
	if uid == "" {
		uid = c.Query("uid")
	}

	resp, err := h.tokens.IssueToken(c.Request.Context(), &services.IssueTokenRequest{UID: uid})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
