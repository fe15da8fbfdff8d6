package models

import (
	"time"

	"github.com/google/uuid"
)

type StorageRoomStatus string

const (
	StorageFree     StorageRoomStatus = "free"
	StorageOccupied StorageRoomStatus = "occupied"
)

// StorageRoom is optionally attached to one apartment; the apartment link
// is SET NULL when the apartment goes away.
type StorageRoom struct {
	ID          uuid.UUID         `json:"id"`
	ApartmentID *uuid.UUID        `json:"apartment_id,omitempty"`
	Number      string            `json:"number"`
	Location    string            `json:"location"`
	Status      StorageRoomStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}
