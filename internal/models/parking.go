package models

import (
	"time"

	"github.com/google/uuid"
)

type ParkingZone struct {
	ID         uuid.UUID `json:"id"`
	EntranceID uuid.UUID `json:"entrance_id"`
	Type       *string   `json:"type,omitempty"`
	Location   *string   `json:"location,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ParkingSpot references exactly one owner; the link is RESTRICT on owner
// deletion, same as apartments.
type ParkingSpot struct {
	ID        uuid.UUID `json:"id"`
	ZoneID    uuid.UUID `json:"parking_zone_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Number    int       `json:"number"`
	Status    *string   `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
