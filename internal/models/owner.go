package models

import (
	"time"

	"github.com/google/uuid"
)

// Owner may hold zero or more apartments and parking spots.
type Owner struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
