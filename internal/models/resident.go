package models

import (
	"time"

	"github.com/google/uuid"
)

// Resident is optionally attached to one apartment; unassigned residents
// are allowed.
type Resident struct {
	ID          uuid.UUID  `json:"id"`
	ApartmentID *uuid.UUID `json:"apartment_id,omitempty"`
	FullName    string     `json:"full_name"`
	Contact     *string    `json:"contact,omitempty"`
	Role        *string    `json:"role,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
