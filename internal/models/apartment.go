package models

import (
	"time"

	"github.com/google/uuid"
)

// Apartment lives under an entrance. The owner link is optional and is
// RESTRICT on owner deletion: an owner with apartments still attached
// cannot be removed until those rows are unlinked.
type Apartment struct {
	Versioned
	ID         uuid.UUID  `json:"id"`
	EntranceID uuid.UUID  `json:"entrance_id"`
	OwnerID    *uuid.UUID `json:"owner_id,omitempty"`
	Number     int        `json:"number"`
	Floor      int        `json:"floor"`
	Rooms      int        `json:"rooms"`
	AreaM2     *int       `json:"area_m2,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (a *Apartment) GetID() string { return a.ID.String() }
