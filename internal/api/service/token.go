package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/openboard/openboard/internal/api/store"
	"github.com/openboard/openboard/pkg/cryptox"
	"github.com/openboard/openboard/pkg/jwtx"
	"github.com/openboard/openboard/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

type TokenService struct {
	Store  store.Store
	Signer jwtx.Signer
}

// SignIn verifies the credentials and mints a bearer token binding the user's
// identity. Unknown usernames and wrong passwords collapse into the same
// ErrInvalidCredentials so callers can't probe which usernames exist.
func (s *TokenService) SignIn(ctx context.Context, username, password string) (string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("signin password mismatch", slog.String("user_id", user.ID))
		return "", ErrInvalidCredentials
	}

	token, err := s.Signer.Sign(jwtx.NewAccessClaims(user.ID, user.Username, time.Now()))
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return "", err
	}

	return token, nil
}
