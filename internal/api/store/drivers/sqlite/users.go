package sqlite

import (
	"context"
	"time"

	"github.com/openboard/openboard/internal/api/domain"
)

type usersRepo struct {
	q queryer
}

const createUserQuery = `
INSERT INTO users (id, username, name, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, createUserQuery,
		u.ID, u.Username, u.Name, u.PasswordHash, now, now,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

const getUserByIDQuery = `
SELECT id, username, name, password_hash, created_at, updated_at
FROM users
WHERE id = ?`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.scanUser(r.q.QueryRowContext(ctx, getUserByIDQuery, id))
}

const getUserByUsernameQuery = `
SELECT id, username, name, password_hash, created_at, updated_at
FROM users
WHERE username = ?`

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.scanUser(r.q.QueryRowContext(ctx, getUserByUsernameQuery, username))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *usersRepo) scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
