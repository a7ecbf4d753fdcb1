// Package domain contains the core data types for the Wayfarer backend.
// This package has no dependencies beyond uuid and is imported by every
// other internal package (itinerary, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned trip to a single destination.
// A trip is the top-level aggregate; itinerary days belong to a trip.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	TotalBudget float64    `json:"total_budget"`
	Travelers   int        `json:"travelers"`
	PersonaID   *uuid.UUID `json:"persona_id,omitempty"` // nil when no persona is attached
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
