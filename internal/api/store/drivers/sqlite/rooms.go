package sqlite

import (
	"context"
	"time"

	"github.com/openboard/openboard/internal/api/domain"
)

type roomsRepo struct {
	q queryer
}

const createRoomQuery = `
INSERT INTO rooms (id, slug, admin_id, created_at)
VALUES (?, ?, ?, ?)`

func (r *roomsRepo) CreateRoom(ctx context.Context, rm domain.Room) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, createRoomQuery,
		rm.ID, rm.Slug, rm.AdminID, now,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

const getRoomByIDQuery = `
SELECT id, slug, admin_id, created_at
FROM rooms
WHERE id = ?`

func (r *roomsRepo) GetRoomByID(ctx context.Context, id string) (domain.Room, error) {
	return r.scanRoom(r.q.QueryRowContext(ctx, getRoomByIDQuery, id))
}

const getRoomBySlugQuery = `
SELECT id, slug, admin_id, created_at
FROM rooms
WHERE slug = ?`

func (r *roomsRepo) GetRoomBySlug(ctx context.Context, slug string) (domain.Room, error) {
	return r.scanRoom(r.q.QueryRowContext(ctx, getRoomBySlugQuery, slug))
}

const listRoomsByAdminQuery = `
SELECT id, slug, admin_id, created_at
FROM rooms
WHERE admin_id = ?
ORDER BY created_at DESC, id DESC`

func (r *roomsRepo) ListRoomsByAdmin(ctx context.Context, adminID string) ([]domain.Room, error) {
	rows, err := r.q.QueryContext(ctx, listRoomsByAdminQuery, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		rm, err := r.scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

func (r *roomsRepo) scanRoom(row rowScanner) (domain.Room, error) {
	var rm domain.Room
	err := row.Scan(&rm.ID, &rm.Slug, &rm.AdminID, &rm.CreatedAt)
	if err != nil {
		return domain.Room{}, mapNotFound(err)
	}
	return rm, nil
}
