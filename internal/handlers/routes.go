package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"irrigation-api/internal/services"
)

// RouterConfig holds the services the routes are built on
type RouterConfig struct {
	TokenService    services.TokenService
	ClaimService    services.ClaimService
	ForecastService services.ForecastService
	RosterService   services.RosterService
}

// SetupRoutes configures all API routes. Unregistered methods on registered
// paths return 405 rather than 404.
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	router.HandleMethodNotAllowed = true

	tokenHandler := NewTokenHandler(config.TokenService)
	claimHandler := NewClaimHandler(config.ClaimService)
	forecastHandler := NewForecastHandler(config.ForecastService)
	rosterHandler := NewRosterHandler(config.RosterService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"service":   "irrigation-api",
			"timestamp": time.Now().UTC(),
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.GET("/token", tokenHandler.IssueToken)
			auth.POST("/token", tokenHandler.IssueToken)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/crop-admins", claimHandler.GrantCropAdmin)
		}

		v1.POST("/forecast", forecastHandler.ForecastForAddress)
		v1.GET("/users/candidates", rosterHandler.CandidateUsers)
	}
}
