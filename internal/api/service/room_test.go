package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoomServiceCreateRoom(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	users := &UserService{Store: st}
	rooms := &RoomService{Store: st}

	admin, err := users.SignUp(ctx, "admin@x.com", "p", "Admin")
	require.NoError(t, err)

	t.Run("creates a room owned by the admin", func(t *testing.T) {
		room, err := rooms.CreateRoom(ctx, admin.ID, "r1")
		require.NoError(t, err)
		require.NotEmpty(t, room.ID)
		require.Equal(t, "r1", room.Slug)
		require.Equal(t, admin.ID, room.AdminID)
	})

	t.Run("rejects a duplicate slug", func(t *testing.T) {
		_, err := rooms.CreateRoom(ctx, admin.ID, "taken")
		require.NoError(t, err)

		_, err = rooms.CreateRoom(ctx, admin.ID, "taken")
		require.ErrorIs(t, err, ErrRoomAlreadyExists)
	})

	t.Run("unique slugs yield distinct ids", func(t *testing.T) {
		r1, err := rooms.CreateRoom(ctx, admin.ID, "alpha")
		require.NoError(t, err)
		r2, err := rooms.CreateRoom(ctx, admin.ID, "beta")
		require.NoError(t, err)
		require.NotEqual(t, r1.ID, r2.ID)
	})

	t.Run("lists rooms for the admin", func(t *testing.T) {
		other, err := users.SignUp(ctx, "other@x.com", "p", "Other")
		require.NoError(t, err)

		_, err = rooms.CreateRoom(ctx, other.ID, "only-other")
		require.NoError(t, err)

		listed, err := rooms.ListRoomsByAdmin(ctx, other.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		require.Equal(t, "only-other", listed[0].Slug)
	})
}
