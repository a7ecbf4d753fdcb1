package domain

import (
	"time"

	"github.com/google/uuid"
)

// Persona is a reusable traveler profile. The itinerary engine reads only
// the name (for archetype classification); Preferences is a free-form blob
// stored as JSONB and passed through untouched.
type Persona struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Preferences map[string]any `json:"preferences"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
