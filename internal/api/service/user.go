package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openboard/openboard/internal/api/domain"
	"github.com/openboard/openboard/internal/api/store"
	"github.com/openboard/openboard/pkg/cryptox"
	"github.com/openboard/openboard/pkg/idx"
	"github.com/openboard/openboard/pkg/slogx"
)

var ErrUsernameAlreadyTaken = errors.New("username already taken")

type UserService struct {
	Store store.Store
}

// SignUp hashes the password and creates a new user record. The plaintext
// password never reaches the store.
func (s *UserService) SignUp(
	ctx context.Context,
	username, password, name string,
) (domain.User, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameAlreadyTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	return user, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
