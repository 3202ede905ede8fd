package database

import (
	"CampusTour/config/environment"
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// NewFirestoreClient initializes a Firebase app from base64 encoded service
// account credentials and returns its Firestore client. With
// FIRESTORE_EMULATOR_HOST set, credentials may be empty.
func NewFirestoreClient(ctx context.Context, cfg environment.DatabaseConfig) (*firestore.Client, error) {
	var opts []option.ClientOption

	if cfg.FirebaseCredentials != "" {
		decodedCredentials, err := base64.StdEncoding.DecodeString(cfg.FirebaseCredentials)
		if err != nil {
			return nil, fmt.Errorf("decode firebase credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decodedCredentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}
	return client, nil
}
