package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the public projection of an account. It never carries credentials.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserCredentials is the login-only projection holding the password hash.
type UserCredentials struct {
	UserID       uuid.UUID
	PasswordHash string
}
