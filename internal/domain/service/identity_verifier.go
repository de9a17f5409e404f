package service

import "context"

// Identity is the verified caller behind a bearer token.
type Identity struct {
	UID   string
	Email string
}

// IdentityVerifier verifies identity-provider tokens.
type IdentityVerifier interface {
	// VerifyIDToken checks the token signature and expiry and returns its subject.
	VerifyIDToken(ctx context.Context, token string) (*Identity, error)
}
