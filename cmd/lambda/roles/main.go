package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"irrigation-api/internal/config"
	"irrigation-api/internal/handlers"
	"irrigation-api/pkg/lambda"
	"irrigation-api/pkg/server"
)

var handler lambda.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err := server.NewContainer(context.Background(), cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	engine := lambda.NewEngine(cfg)
	claimHandler := handlers.NewClaimHandler(container.ClaimService)
	engine.POST("/api/v1/admin/crop-admins", claimHandler.GrantCropAdmin)

	handler = lambda.NewHandler(engine)
}

func main() {
	awslambda.Start(handler)
}
