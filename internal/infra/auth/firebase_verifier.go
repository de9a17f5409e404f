package auth

import (
	"context"

	"storefront/internal/domain/service"
	"storefront/internal/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// idTokenVerifier is the part of the Firebase auth client used here.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseVerifier verifies Firebase ID tokens.
type firebaseVerifier struct {
	client idTokenVerifier
}

// VerifyIDToken checks the Firebase ID token and returns its uid and email.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, token string) (*service.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "invalid firebase id token")
	}

	identity := &service.Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
