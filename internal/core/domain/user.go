package domain

import (
	"strings"
	"time"
)

// User models an account that can authenticate against the API.
type User struct {
	ID           string    `json:"id"         db:"id"`
	Name         string    `json:"name"       db:"name"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	Role         Role      `json:"role"       db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Identity is the verified content of a session token. It is attached to a
// single request and never persisted.
type Identity struct {
	UserID    string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// NormalizeEmail lower-cases and trims an address so lookups are
// case-insensitive and the unique index sees one spelling per mailbox.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
