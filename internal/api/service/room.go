package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openboard/openboard/internal/api/domain"
	"github.com/openboard/openboard/internal/api/store"
	"github.com/openboard/openboard/pkg/idx"
	"github.com/openboard/openboard/pkg/slogx"
)

var ErrRoomAlreadyExists = errors.New("room already exists")

type RoomService struct {
	Store store.Store
}

// CreateRoom creates a room owned by adminID. Slug uniqueness is enforced by
// the store; the admin must reference an existing user (FK).
func (s *RoomService) CreateRoom(
	ctx context.Context,
	adminID, slug string,
) (domain.Room, error) {
	log := slogx.FromContext(ctx)

	room := domain.Room{
		ID:      idx.New().String(),
		Slug:    slug,
		AdminID: adminID,
	}

	if err := s.Store.Rooms().CreateRoom(ctx, room); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Room{}, ErrRoomAlreadyExists
		}
		log.Error("failed to create room",
			slog.String("slug", slug),
			slog.Any("error", err),
		)
		return domain.Room{}, err
	}

	return room, nil
}

// ListRoomsByAdmin returns all rooms owned by the given user, newest first.
func (s *RoomService) ListRoomsByAdmin(ctx context.Context, adminID string) ([]domain.Room, error) {
	return s.Store.Rooms().ListRoomsByAdmin(ctx, adminID)
}
