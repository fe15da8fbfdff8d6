package models

import (
	"time"

	"github.com/google/uuid"
)

// Role profiles tie a login identity (User) to a business role. Each is
// 1:1 with its user; a user with none of them and no superuser flag is
// garbage-collected.

type ComplexAdminProfile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ComplexID uuid.UUID `json:"complex_id"`
	CreatedAt time.Time `json:"created_at"`
}

type OwnerAccount struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type StaffAccount struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	StaffID    uuid.UUID       `json:"staff_id"`
	AccessType StaffAccessType `json:"access_type"`
	CreatedAt  time.Time       `json:"created_at"`
}
