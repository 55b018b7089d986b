package store

import (
	"context"
	"errors"

	"github.com/openboard/openboard/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Rooms() Rooms

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during signin.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

type Rooms interface {
	// GetRoomByID returns a room by id.
	GetRoomByID(ctx context.Context, id string) (domain.Room, error)

	// GetRoomBySlug returns a room by its unique slug.
	GetRoomBySlug(ctx context.Context, slug string) (domain.Room, error)

	// CreateRoom inserts a new room (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the slug is taken.
	CreateRoom(ctx context.Context, rm domain.Room) error

	// ListRoomsByAdmin returns all rooms owned by a user, newest first.
	ListRoomsByAdmin(ctx context.Context, adminID string) ([]domain.Room, error)
}
