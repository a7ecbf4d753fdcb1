package itinerary

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
)

// ErrInvalidDateRange is returned by Generate when the end date is before
// the start date. The engine never swaps or coerces dates.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrInvalidParameters is returned by Generate for an empty destination, a
// negative budget, or a traveler count below one.
var ErrInvalidParameters = errors.New("invalid parameters")

// Rand is the source of randomness for template selection and cost
// variation. It is satisfied by *math/rand.Rand, so tests inject a seeded
// source for deterministic output.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// lockedRand delegates to the process-wide math/rand source, which is
// safe for concurrent use. It is the default when no Rand is injected.
type lockedRand struct{}

func (lockedRand) Intn(n int) int   { return rand.Intn(n) }
func (lockedRand) Float64() float64 { return rand.Float64() }

// Params are the caller-owned inputs to one generation call. The engine
// treats them as immutable and applies no defaults; callers (the HTTP
// layer and trip records) supply budget 1000 and one traveler when the
// user left them unset.
type Params struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Persona     *domain.Persona
	TotalBudget float64
	Travelers   int
}

// GeneratedItinerary is the aggregate returned to the caller: input echo,
// archetype label, generation timestamp, and the ordered day list.
type GeneratedItinerary struct {
	Destination string         `json:"destination"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Days        int            `json:"days"`
	TotalBudget float64        `json:"total_budget"`
	Travelers   int            `json:"travelers"`
	Archetype   Archetype      `json:"archetype"`
	Persona     string         `json:"persona"`
	GeneratedAt time.Time      `json:"generated_at"`
	Itinerary   []GeneratedDay `json:"daily_itinerary"`
}

// Engine generates itineraries. One Engine can serve unlimited concurrent
// Generate calls: the library is read-only and the default Rand is locked.
type Engine struct {
	lib *Library
	rng Rand
}

// NewEngine constructs an Engine over the given library. A nil rng selects
// the process-wide math/rand source; tests pass a seeded *rand.Rand.
func NewEngine(lib *Library, rng Rand) *Engine {
	if rng == nil {
		rng = lockedRand{}
	}
	return &Engine{lib: lib, rng: rng}
}

// Generate produces a complete itinerary for the given parameters.
//
// The day count is the inclusive whole-day span between start and end
// dates; day one always opens with an arrival activity and the final day
// always closes with a departure activity. On a single-day trip both rules
// apply to the same day.
func (e *Engine) Generate(params Params) (GeneratedItinerary, error) {
	if params.Destination == "" {
		return GeneratedItinerary{}, fmt.Errorf("%w: destination is required", ErrInvalidParameters)
	}
	if params.TotalBudget < 0 {
		return GeneratedItinerary{}, fmt.Errorf("%w: total budget must not be negative", ErrInvalidParameters)
	}
	if params.Travelers < 1 {
		return GeneratedItinerary{}, fmt.Errorf("%w: traveler count must be at least 1", ErrInvalidParameters)
	}

	start := dateOnly(params.StartDate)
	end := dateOnly(params.EndDate)
	if end.Before(start) {
		return GeneratedItinerary{}, fmt.Errorf("%w: end date %s is before start date %s",
			ErrInvalidDateRange, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	dayCount := int(end.Sub(start).Hours()/24) + 1
	dailyBudget := params.TotalBudget / float64(dayCount)
	archetype := Classify(params.Persona)

	days := make([]GeneratedDay, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, e.composeDay(
			i+1, date, params.Destination, archetype,
			dailyBudget, params.Travelers,
			i == 0, i == dayCount-1,
		))
	}

	return GeneratedItinerary{
		Destination: params.Destination,
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		Days:        dayCount,
		TotalBudget: params.TotalBudget,
		Travelers:   params.Travelers,
		Archetype:   archetype,
		Persona:     personaLabel(params.Persona),
		GeneratedAt: time.Now().UTC(),
		Itinerary:   days,
	}, nil
}

// personaLabel echoes the persona name, or a generic label when absent.
func personaLabel(p *domain.Persona) string {
	if p == nil || p.Name == "" {
		return "General Traveler"
	}
	return p.Name
}

// dateOnly truncates a timestamp to midnight UTC so day arithmetic is
// immune to the time-of-day and zone of the caller's values.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
