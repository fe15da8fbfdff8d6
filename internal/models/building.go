package models

import (
	"time"

	"github.com/google/uuid"
)

type Building struct {
	ID        uuid.UUID `json:"id"`
	ComplexID uuid.UUID `json:"complex_id"`
	Number    int       `json:"number"`
	Floors    int       `json:"floors"`
	CreatedAt time.Time `json:"created_at"`
}
