package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"irrigation-api/internal/apperrors"
	"irrigation-api/internal/services"
)

// ForecastHandler handles address-to-forecast requests
type ForecastHandler struct {
	forecasts services.ForecastService
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecasts services.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecasts: forecasts}
}

// ForecastForAddress geocodes the address from the JSON body and returns a
// record-oriented JSON array of daily precipitation-probability buckets.
// Failures use plain-text bodies on this endpoint.
func (h *ForecastHandler) ForecastForAddress(c *gin.Context) {
	var body struct {
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondErrorText(c, apperrors.Validation("missing 'address' in request"))
		return
	}

	req := &services.ForecastRequest{Address: body.Address}
	records, err := h.forecasts.ForecastForAddress(c.Request.Context(), req)
	if err != nil {
		respondErrorText(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
