package models

import (
	"time"

	"github.com/google/uuid"
)

type TicketStatus string

const (
	TicketNew        TicketStatus = "new"
	TicketInProgress TicketStatus = "in_progress"
	TicketDone       TicketStatus = "done"
)

// MaintenanceRequest belongs to exactly one owner and one apartment.
// Status only ever moves forward: new -> in_progress -> done.
type MaintenanceRequest struct {
	Versioned
	ID          uuid.UUID    `json:"id"`
	OwnerID     uuid.UUID    `json:"owner_id"`
	ApartmentID uuid.UUID    `json:"apartment_id"`
	Description string       `json:"description"`
	Status      TicketStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (m *MaintenanceRequest) GetID() string { return m.ID.String() }

// CanTransition reports whether a status change is a legal forward step.
func (m *MaintenanceRequest) CanTransition(to TicketStatus) bool {
	switch {
	case m.Status == TicketNew && to == TicketInProgress:
		return true
	case m.Status == TicketInProgress && to == TicketDone:
		return true
	default:
		return false
	}
}
