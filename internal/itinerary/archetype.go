// Package itinerary implements the itinerary generation engine: given trip
// parameters and an optional traveler persona it produces a complete
// day-by-day schedule of timed activities with costs, categories, and
// accessibility metadata.
//
// The engine is pure, synchronous computation with no I/O. Its only shared
// state is the read-only template library, so a single Engine is safe for
// concurrent use from multiple request goroutines.
package itinerary

import (
	"strings"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
)

// Archetype is one of the fixed traveler-style categories used to select
// activity content.
type Archetype string

const (
	ArchetypeAdventure Archetype = "adventure"
	ArchetypeCultural  Archetype = "cultural"
	ArchetypeFoodie    Archetype = "foodie"
	ArchetypeFamily    Archetype = "family"
	ArchetypeMobility  Archetype = "mobility"
)

// Classify maps a persona to an archetype by case-insensitive substring
// match on the persona name. A nil persona or an empty name classifies as
// cultural, the universal default.
//
// The rules are evaluated in a fixed order and the first match wins, so a
// name containing both "adventure" and "family" is classified adventure.
// The order is load-bearing: callers rely on it being stable across
// releases, fragile as substring matching on free text is.
func Classify(p *domain.Persona) Archetype {
	if p == nil || p.Name == "" {
		return ArchetypeCultural
	}

	name := strings.ToLower(p.Name)
	switch {
	case strings.Contains(name, "adventure"):
		return ArchetypeAdventure
	case strings.Contains(name, "foodie"), strings.Contains(name, "culinary"):
		return ArchetypeFoodie
	case strings.Contains(name, "family"):
		return ArchetypeFamily
	case strings.Contains(name, "mobility"), strings.Contains(name, "accessible"):
		return ArchetypeMobility
	default:
		return ArchetypeCultural
	}
}
