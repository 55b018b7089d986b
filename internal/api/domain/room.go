package domain

import "time"

// Room is a named resource owned by the user that created it. The slug is
// unique across all rooms.
type Room struct {
	ID        string
	Slug      string
	AdminID   string // owning user's id
	CreatedAt time.Time
}
