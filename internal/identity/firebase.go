// Package identity adapts the Firebase Admin SDK to the provider and crop
// store interfaces consumed by the services layer.
package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"irrigation-api/internal/config"
	"irrigation-api/internal/models"
)

// Client wraps the Firebase auth and realtime-database clients. Construct it
// once at process start and pass it down; it must not be re-initialized per
// request.
type Client struct {
	auth *auth.Client
	db   *db.Client
}

// NewClient initializes the Firebase app from the service-account credential
// file and database URL fixed in the configuration.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	app, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: cfg.Firebase.DatabaseURL,
	}, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	return &Client{auth: authClient, db: dbClient}, nil
}

// CustomToken mints a signed short-lived credential for the uid
func (c *Client) CustomToken(ctx context.Context, uid string) (string, error) {
	return c.auth.CustomToken(ctx, uid)
}

// SetCustomUserClaims replaces the identity's custom claims
func (c *Client) SetCustomUserClaims(ctx context.Context, uid string, claims map[string]interface{}) error {
	return c.auth.SetCustomUserClaims(ctx, uid, claims)
}

// VerifyIDToken verifies a bearer token and returns the caller's uid
func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := c.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	return token.UID, nil
}

// ListUsers fetches one page of provider identities starting at the opaque
// continuation token. An empty returned token means the listing is done.
func (c *Client) ListUsers(ctx context.Context, pageToken string, pageSize int) ([]models.Identity, string, error) {
	pager := iterator.NewPager(c.auth.Users(ctx, ""), pageSize, pageToken)

	var records []*auth.ExportedUserRecord
	nextToken, err := pager.NextPage(&records)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch user page: %w", err)
	}

	identities := make([]models.Identity, 0, len(records))
	for _, record := range records {
		identities = append(identities, models.Identity{
			UID:          record.UID,
			Email:        record.Email,
			DisplayName:  record.DisplayName,
			CustomClaims: record.CustomClaims,
		})
	}
	return identities, nextToken, nil
}

// Crops reads the raw crops value stored under users/{uid}/crops. The value
// comes back in whatever shape the database holds; models.NormalizeCrops
// owns the coercion to a list.
func (c *Client) Crops(ctx context.Context, uid string) (interface{}, error) {
	var raw interface{}
	ref := c.db.NewRef(fmt.Sprintf("users/%s/crops", uid))
	if err := ref.Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ref.Path, err)
	}
	return raw, nil
}
