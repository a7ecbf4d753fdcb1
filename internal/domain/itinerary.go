package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItineraryDay is one persisted day of a generated itinerary.
// Days are numbered 1..n with no gaps; each day carries exactly three
// activities in slot order (morning, afternoon, evening).
type ItineraryDay struct {
	ID         uuid.UUID  `json:"id"`
	TripID     uuid.UUID  `json:"trip_id"`
	DayNumber  int        `json:"day_number"`
	Date       time.Time  `json:"date"`
	DayOfWeek  string     `json:"day_of_week"`
	Theme      string     `json:"theme"`
	TotalCost  int        `json:"total_cost"`
	Activities []Activity `json:"activities"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Activity is one persisted timed activity within an itinerary day.
// StartTime and EndTime are wall-clock "HH:MM" strings; EndTime may be
// earlier than StartTime when the activity wraps past midnight.
type Activity struct {
	ID                  uuid.UUID       `json:"id"`
	DayID               uuid.UUID       `json:"day_id"`
	SlotIndex           int             `json:"slot_index"` // 0=morning, 1=afternoon, 2=evening
	TimeSlot            string          `json:"time_slot"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time"`
	DurationMinutes     int             `json:"duration_minutes"`
	Location            string          `json:"location"`
	Category            string          `json:"category"`
	EstimatedCost       int             `json:"estimated_cost"`
	ReservationRequired bool            `json:"reservation_required"`
	Difficulty          string          `json:"difficulty"`
	Accessibility       map[string]bool `json:"accessibility"`
	Tips                string          `json:"tips,omitempty"`
}
