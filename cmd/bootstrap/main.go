// Command bootstrap grants the crop-admin claim to a single identity. It is
// a one-time operator tool for initial setup, not a request handler.
package main

import (
	"context"
	"fmt"
	"log"

	"irrigation-api/internal/config"
	"irrigation-api/internal/identity"
	"irrigation-api/internal/models"
)

// Set to the uid of the first operator account before running
const adminUID = ""

func main() {
	if adminUID == "" {
		log.Fatal("adminUID is not set; edit cmd/bootstrap/main.go before running")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client, err := identity.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create identity client: %v", err)
	}

	claims := map[string]interface{}{models.CropAdminClaim: true}
	if err := client.SetCustomUserClaims(ctx, adminUID, claims); err != nil {
		log.Fatalf("Failed to set custom claims: %v", err)
	}

	fmt.Printf("%s is now a crop admin\n", adminUID)
}
