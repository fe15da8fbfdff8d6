package models

import (
	"time"

	"github.com/google/uuid"
)

// ResidentialComplex is the root of the hierarchy. Deleting one cascades
// down through buildings, entrances and apartments.
type ResidentialComplex struct {
	Versioned
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Management *string   `json:"management,omitempty"`
	Contact    *string   `json:"contact,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *ResidentialComplex) GetID() string { return c.ID.String() }
