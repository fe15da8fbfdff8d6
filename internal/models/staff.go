package models

import (
	"time"

	"github.com/google/uuid"
)

// StaffAccessType distinguishes security personnel from maintenance
// technicians on the staff login account.
type StaffAccessType string

const (
	AccessGuard       StaffAccessType = "guard"
	AccessMaintenance StaffAccessType = "maintenance"
)

// Staff belongs to exactly one complex. The Role field is free text
// ("electrician", "security" etc); authorization keys off the login
// account's access type, not this field.
type Staff struct {
	ID           uuid.UUID `json:"id"`
	ComplexID    uuid.UUID `json:"complex_id"`
	FullName     string    `json:"full_name"`
	Contact      *string   `json:"contact,omitempty"`
	Role         *string   `json:"role,omitempty"`
	WorkSchedule *string   `json:"work_schedule,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
