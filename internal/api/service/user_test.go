package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserServiceSignUp(t *testing.T) {
	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("creates a user with a fresh id and hashed password", func(t *testing.T) {
		user, err := svc.SignUp(ctx, "a@x.com", "p", "A")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "a@x.com", user.Username)
		require.Equal(t, "A", user.Name)
		require.NotEqual(t, "p", user.PasswordHash)
		require.Contains(t, user.PasswordHash, "argon2id")

		stored, err := svc.GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, user.Username, stored.Username)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		_, err := svc.SignUp(ctx, "dup@x.com", "p1", "First")
		require.NoError(t, err)

		_, err = svc.SignUp(ctx, "dup@x.com", "p2", "Second")
		require.ErrorIs(t, err, ErrUsernameAlreadyTaken)
	})

	t.Run("distinct usernames get distinct ids", func(t *testing.T) {
		u1, err := svc.SignUp(ctx, "one@x.com", "p", "One")
		require.NoError(t, err)
		u2, err := svc.SignUp(ctx, "two@x.com", "p", "Two")
		require.NoError(t, err)
		require.NotEqual(t, u1.ID, u2.ID)
	})
}
