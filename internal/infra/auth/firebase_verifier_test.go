package auth

import (
	"context"
	"errors"
	"testing"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (s stubTokenVerifier) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		verifier := &firebaseVerifier{client: stubTokenVerifier{token: &firebaseauth.Token{
			UID:    "uid-owner-1",
			Claims: map[string]interface{}{"email": "owner@example.com"},
		}}}

		identity, err := verifier.VerifyIDToken(context.Background(), "token")

		require.NoError(t, err)
		assert.Equal(t, "uid-owner-1", identity.UID)
		assert.Equal(t, "owner@example.com", identity.Email)
	})

	t.Run("rejected token", func(t *testing.T) {
		verifier := &firebaseVerifier{client: stubTokenVerifier{err: errors.New("ID token has expired")}}

		_, err := verifier.VerifyIDToken(context.Background(), "token")

		assert.ErrorContains(t, err, "ID token has expired")
	})
}
