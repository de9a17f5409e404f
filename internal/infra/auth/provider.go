package auth

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the IdentityVerifier, injected by Fx
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	App    *firebase.App
	Logger *slog.Logger
}

// NewIdentityVerifier creates the verifier selected by auth.provider
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	cfg := params.Config.Auth

	switch cfg.Provider {
	case constants.AuthProviderFirebase:
		client, err := params.App.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firebase auth client")
		}
		params.Logger.Info("Using Firebase ID token verifier")

		return &firebaseVerifier{client: client}, nil

	case constants.AuthProviderJWT:
		params.Logger.Info("Using HS256 JWT verifier", slog.String("issuer", cfg.JWTIssuer))

		return newJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}
}
