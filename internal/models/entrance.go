package models

import (
	"time"

	"github.com/google/uuid"
)

// Entrance is a stairwell/access unit within a building.
type Entrance struct {
	ID         uuid.UUID `json:"id"`
	BuildingID uuid.UUID `json:"building_id"`
	Number     int       `json:"number"`
	CreatedAt  time.Time `json:"created_at"`
}
