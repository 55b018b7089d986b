package service

import (
	"context"
	"testing"

	"github.com/openboard/openboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceSignIn(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	secret := []byte("signin-test-secret")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(secret)

	users := &UserService{Store: st}
	tokens := &TokenService{Store: st, Signer: signer}

	user, err := users.SignUp(ctx, "a@x.com", "correct-password", "A")
	require.NoError(t, err)

	t.Run("issues a verifiable token bound to the user", func(t *testing.T) {
		token, err := tokens.SignIn(ctx, "a@x.com", "correct-password")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.UserID)
		require.Equal(t, "a@x.com", claims.Email)
		require.Nil(t, claims.ExpiresAt)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, err := tokens.SignIn(ctx, "a@x.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rejects an unknown username with the same error", func(t *testing.T) {
		_, err := tokens.SignIn(ctx, "nobody@x.com", "correct-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
