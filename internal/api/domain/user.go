package domain

import "time"

type User struct {
	ID           string
	Username     string // clients send an email address here
	Name         string // display name
	PasswordHash string // argon2id encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
