package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential-bearing login identity. Every user must, at all
// times after creation, hold at least one role profile or be a superuser;
// the account repository reaps identities whose last profile is removed.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
}
