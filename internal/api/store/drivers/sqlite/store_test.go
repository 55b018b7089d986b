package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/openboard/openboard/internal/api/domain"
	"github.com/openboard/openboard/internal/api/store"
	"github.com/openboard/openboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	st, err := NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())

	t.Cleanup(func() { _ = st.Close() })
	return st
}

func testUser(username string) domain.User {
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Name:         "Test User",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	}
}

func TestUsersRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := testUser("alice@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, u))

	t.Run("get by id", func(t *testing.T) {
		got, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.Username, got.Username)
		require.Equal(t, u.PasswordHash, got.PasswordHash)
		require.False(t, got.CreatedAt.IsZero())
	})

	t.Run("get by username", func(t *testing.T) {
		got, err := st.Users().GetUserByUsername(ctx, u.Username)
		require.NoError(t, err)
		require.Equal(t, u.ID, got.ID)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		_, err := st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Users().GetUserByUsername(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username maps to already exists", func(t *testing.T) {
		dup := testUser(u.Username)
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate id maps to already exists", func(t *testing.T) {
		dup := testUser("other@example.com")
		dup.ID = u.ID
		err := st.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestRoomsRepo(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	admin := testUser("admin@example.com")
	require.NoError(t, st.Users().CreateUser(ctx, admin))

	room := domain.Room{
		ID:      idx.New().String(),
		Slug:    "general",
		AdminID: admin.ID,
	}
	require.NoError(t, st.Rooms().CreateRoom(ctx, room))

	t.Run("get by id and slug", func(t *testing.T) {
		got, err := st.Rooms().GetRoomByID(ctx, room.ID)
		require.NoError(t, err)
		require.Equal(t, "general", got.Slug)

		got, err = st.Rooms().GetRoomBySlug(ctx, "general")
		require.NoError(t, err)
		require.Equal(t, room.ID, got.ID)
	})

	t.Run("duplicate slug maps to already exists", func(t *testing.T) {
		dup := domain.Room{ID: idx.New().String(), Slug: "general", AdminID: admin.ID}
		err := st.Rooms().CreateRoom(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("list by admin newest first", func(t *testing.T) {
		second := domain.Room{ID: idx.New().String(), Slug: "random", AdminID: admin.ID}
		require.NoError(t, st.Rooms().CreateRoom(ctx, second))

		rooms, err := st.Rooms().ListRoomsByAdmin(ctx, admin.ID)
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		// ULIDs sort by creation time, so the tie-break keeps insertion order stable.
		require.Equal(t, second.ID, rooms[0].ID)
		require.Equal(t, room.ID, rooms[1].ID)
	})

	t.Run("unknown admin lists nothing", func(t *testing.T) {
		rooms, err := st.Rooms().ListRoomsByAdmin(ctx, idx.New().String())
		require.NoError(t, err)
		require.Empty(t, rooms)
	})
}

func TestWithTx(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	t.Run("commit persists writes", func(t *testing.T) {
		u := testUser("tx-commit@example.com")
		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, u)
		})
		require.NoError(t, err)

		_, err = st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
	})

	t.Run("error rolls back writes", func(t *testing.T) {
		u := testUser("tx-rollback@example.com")
		err := st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().CreateUser(ctx, u); err != nil {
				return err
			}
			return context.Canceled
		})
		require.ErrorIs(t, err, context.Canceled)

		_, err = st.Users().GetUserByID(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
