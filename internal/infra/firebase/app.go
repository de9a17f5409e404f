// Package firebase builds the Firebase Admin app shared by Firestore and Authentication.
package firebase

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app. Without a credentials path the
// application default credentials (or the emulators) are used.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	var opts []option.ClientOption
	var appConfig *firebase.Config

	if cfg.Firebase != nil {
		if cfg.Firebase.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
		}
		if cfg.Firebase.ProjectID != "" {
			appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
		}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized", slog.Bool("explicit_credentials", len(opts) > 0))

	return app, nil
}
