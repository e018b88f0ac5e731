package domain

import "time"

// User represents an account. PasswordHash is an opaque credential and must
// never be serialized to clients.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool

	CreatedAt time.Time
}
