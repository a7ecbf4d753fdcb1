package itinerary

// TimeSlot is one of the three fixed activity periods per day.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

// slots is the fixed per-day slot order. Every generated day has exactly
// one activity per slot, in this order.
var slots = [3]TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}

// slotClock holds the canonical start time and duration for a slot.
type slotClock struct {
	Start   string // "HH:MM"
	Minutes int
}

// slotClocks are fixed for every archetype and destination.
var slotClocks = map[TimeSlot]slotClock{
	SlotMorning:   {Start: "09:00", Minutes: 150},
	SlotAfternoon: {Start: "14:00", Minutes: 180},
	SlotEvening:   {Start: "19:00", Minutes: 120},
}

// Template is a static, parameterized activity definition. Text fields may
// embed a "{destination}" placeholder resolved at generation time.
//
// Templates are value objects created once at process start and never
// mutated; the composer copies what it needs instead of writing back.
type Template struct {
	Title               string
	Description         string
	Location            string
	Category            string
	BaseCost            float64
	Difficulty          string
	Accessibility       map[string]bool
	ReservationRequired bool
	Tips                string
}
