package itinerary

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// GeneratedActivity is one timed activity produced by the engine, with all
// placeholders resolved and the cost already clamped and rounded.
type GeneratedActivity struct {
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	TimeSlot            TimeSlot        `json:"time_slot"`
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

// GeneratedDay is one composed day: exactly three activities in slot order,
// the day total cost, and a theme label.
type GeneratedDay struct {
	DayNumber  int                 `json:"day_number"`
	Date       string              `json:"date"`
	DayOfWeek  string              `json:"day_of_week"`
	Activities []GeneratedActivity `json:"activities"`
	TotalCost  int                 `json:"total_cost"`
	Theme      string              `json:"theme"`
}

// arrivalTemplate synthesizes the fixed first-day morning activity. It
// replaces library content so day one always opens with orientation.
func arrivalTemplate() Template {
	return Template{
		Title:       "Welcome to {destination}",
		Description: "Settle in and get oriented with your new destination",
		Location:    "{destination} - Hotel/City Center",
		Category:    "orientation",
		BaseCost:    10,
		Difficulty:  "easy",
		Tips:        "Take time to rest and explore your immediate surroundings",
	}
}

// departureTemplate synthesizes the fixed last-day evening activity.
func departureTemplate() Template {
	return Template{
		Title:       "Farewell {destination}",
		Description: "Last-minute shopping and final views of the city",
		Location:    "{destination} - Shopping District/Airport",
		Category:    "departure",
		BaseCost:    20,
		Difficulty:  "easy",
		Tips:        "Allow extra time for transportation to airport",
	}
}

// composeDay builds one fully-populated day: one activity per slot in slot
// order, the first-day morning and last-day evening replaced by the
// synthesized arrival and departure templates.
func (e *Engine) composeDay(dayNumber int, date time.Time, destination string, a Archetype, dailyBudget float64, travelers int, first, last bool) GeneratedDay {
	activities := make([]GeneratedActivity, 0, len(slots))
	total := 0

	for _, slot := range slots {
		var tpl Template
		switch {
		case first && slot == SlotMorning:
			tpl = arrivalTemplate()
		case last && slot == SlotEvening:
			tpl = departureTemplate()
		default:
			pool := e.lib.TemplatesFor(a, slot)
			tpl = pool[e.rng.Intn(len(pool))]
		}

		act := e.instantiate(tpl, slot, destination, dailyBudget, travelers)
		total += act.EstimatedCost
		activities = append(activities, act)
	}

	return GeneratedDay{
		DayNumber:  dayNumber,
		Date:       date.Format("2006-01-02"),
		DayOfWeek:  date.Weekday().String(),
		Activities: activities,
		TotalCost:  total,
		Theme:      e.dayTheme(dayNumber, a, first, last),
	}
}

// instantiate resolves a template against the destination, assigns the
// slot's canonical clock times, and computes the bounded randomized cost.
func (e *Engine) instantiate(tpl Template, slot TimeSlot, destination string, dailyBudget float64, travelers int) GeneratedActivity {
	clock := slotClocks[slot]

	return GeneratedActivity{
		Title:               renderPlaceholders(tpl.Title, destination),
		Description:         renderPlaceholders(tpl.Description, destination),
		TimeSlot:            slot,
		StartTime:           clock.Start,
		EndTime:             endTimeAfter(clock.Start, clock.Minutes),
		DurationMinutes:     clock.Minutes,
		Location:            renderPlaceholders(tpl.Location, destination),
		Category:            tpl.Category,
		EstimatedCost:       e.estimatedCost(tpl.BaseCost, travelers, dailyBudget),
		ReservationRequired: reservationRequired(tpl),
		Difficulty:          tpl.Difficulty,
		Accessibility:       copyAccessibility(tpl.Accessibility),
		Tips:                renderPlaceholders(tpl.Tips, destination),
	}
}

// estimatedCost computes base × travelers × U[0.8, 1.2], clamps it at 40%
// of the daily budget, and rounds to the nearest whole currency unit.
//
// The clamp is a hard ceiling, not a renormalization: a day's three
// activities may sum above or below the nominal daily budget.
func (e *Engine) estimatedCost(baseCost float64, travelers int, dailyBudget float64) int {
	cost := baseCost * float64(travelers)
	variation := 0.8 + e.rng.Float64()*0.4
	return int(math.Round(math.Min(cost*variation, dailyBudget*0.4)))
}

// reservationRequired applies the dining/culinary default: those categories
// require a reservation even when the template does not say so.
func reservationRequired(tpl Template) bool {
	return tpl.ReservationRequired || tpl.Category == "dining" || tpl.Category == "culinary"
}

// dayTheme returns the day's theme label. Arrival and departure days have
// fixed themes; the rest cycle through the archetype's 3-element theme list.
func (e *Engine) dayTheme(dayNumber int, a Archetype, first, last bool) string {
	if first {
		return "Arrival & Orientation"
	}
	if last {
		return "Farewell & Departure"
	}
	themes := e.lib.ThemesFor(a)
	return themes[(dayNumber-1)%len(themes)]
}

// renderPlaceholders substitutes every "{destination}" placeholder. Plain
// string replacement on purpose; templates need nothing more.
func renderPlaceholders(s, destination string) string {
	return strings.ReplaceAll(s, "{destination}", destination)
}

// endTimeAfter adds duration minutes to an "HH:MM" start time, wrapping
// across midnight (23:00 + 120min yields "01:00").
func endTimeAfter(start string, minutes int) string {
	var h, m int
	fmt.Sscanf(start, "%d:%d", &h, &m)
	total := (h*60 + m + minutes) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// copyAccessibility clones a template's flag set so generated activities
// never alias library state.
func copyAccessibility(flags map[string]bool) map[string]bool {
	out := make(map[string]bool, len(flags))
	for k, v := range flags {
		out[k] = v
	}
	return out
}
