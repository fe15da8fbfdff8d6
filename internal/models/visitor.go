package models

import (
	"time"

	"github.com/google/uuid"
)

// Visitor is a guard-logbook entry. AddedBy records the user who logged it;
// both links survive deletion of their targets as NULLs.
type Visitor struct {
	ID          uuid.UUID  `json:"id"`
	ApartmentID *uuid.UUID `json:"apartment_id,omitempty"`
	AddedByID   *uuid.UUID `json:"added_by_id,omitempty"`
	FullName    string     `json:"full_name"`
	Purpose     string     `json:"purpose"`
	CreatedAt   time.Time  `json:"created_at"`
}
