// Package lambda wires the gin engine into AWS Lambda behind API Gateway.
// Each function builds its container once in init and serves every
// invocation through the same adapter.
package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"irrigation-api/internal/config"
	"irrigation-api/internal/middleware"
)

// Handler is the API Gateway proxy signature served by each function
type Handler func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewEngine builds a gin engine with the shared middleware stack
func NewEngine(cfg *config.Config) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.IsServerlessMode() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.StructuredLogger())
	return engine
}

// NewHandler adapts the engine to API Gateway proxy events
func NewHandler(engine *gin.Engine) Handler {
	adapter := ginadapter.New(engine)
	return adapter.ProxyWithContext
}
