package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the bearer-token claims used across the service. The custom
// field names match what existing clients already decode, so we are keeping
// additive changes only to preserve compatibility.
type Claims struct {
	jwt.RegisteredClaims

	// UserID identifies the authenticated user.
	UserID string `json:"userId"`

	// Email is the address the user signed up with.
	Email string `json:"email,omitempty"`
}

// NewAccessClaims builds claims binding a user identity to a token.
//
// Tokens deliberately carry no exp/nbf: once issued, a token verifies for
// the lifetime of the shared secret. Only iat is recorded.
func NewAccessClaims(userID, email string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
	}
}
