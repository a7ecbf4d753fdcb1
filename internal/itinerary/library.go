package itinerary

// Library is the read-only activity template catalogue, keyed by archetype
// and time slot. Build it once at startup with NewLibrary and share it
// across all Engine instances; no call path mutates its contents.
type Library struct {
	templates map[Archetype]map[TimeSlot][]Template
	themes    map[Archetype][3]string
}

// TemplatesFor returns the ordered template list for the given archetype
// and slot. An archetype with no registered entry falls back to the
// cultural catalogue, so the result is never empty for a valid slot.
//
// The returned slice is shared library state; callers must not modify it.
func (l *Library) TemplatesFor(a Archetype, slot TimeSlot) []Template {
	bySlot, ok := l.templates[a]
	if !ok {
		bySlot = l.templates[ArchetypeCultural]
	}
	return bySlot[slot]
}

// ThemesFor returns the archetype's 3-element day theme cycle, falling back
// to the cultural themes for unregistered archetypes.
func (l *Library) ThemesFor(a Archetype) [3]string {
	themes, ok := l.themes[a]
	if !ok {
		return l.themes[ArchetypeCultural]
	}
	return themes
}

// NewLibrary builds the default template catalogue. Every archetype defines
// a non-empty list for every slot.
func NewLibrary() *Library {
	return &Library{
		templates: map[Archetype]map[TimeSlot][]Template{
			ArchetypeAdventure: {
				SlotMorning: {
					{
						Title:         "Hiking Adventure in {destination}",
						Description:   "Explore scenic trails and natural landscapes around {destination}",
						Location:      "{destination} - Mountain trails or nature parks",
						Category:      "adventure",
						BaseCost:      25,
						Difficulty:    "moderate",
						Accessibility: map[string]bool{"fitness_required": true},
						Tips:          "Bring comfortable hiking shoes and water",
					},
					{
						Title:       "Bike Tour of {destination}",
						Description: "Cycle through the city and discover hidden gems",
						Location:    "{destination} - City bike routes",
						Category:    "adventure",
						BaseCost:    35,
						Difficulty:  "easy",
						Tips:        "Most tours provide bikes and helmets",
					},
				},
				SlotAfternoon: {
					{
						Title:               "Rock Climbing Experience",
						Description:         "Challenge yourself with guided climbing sessions",
						Location:            "{destination} - Local climbing spots",
						Category:            "adventure",
						BaseCost:            75,
						Difficulty:          "hard",
						Accessibility:       map[string]bool{"fitness_required": true},
						ReservationRequired: true,
					},
					{
						Title:       "Water Sports Adventure",
						Description: "Enjoy kayaking, paddleboarding, or boat tours",
						Location:    "{destination} - Waterfront area",
						Category:    "adventure",
						BaseCost:    50,
						Difficulty:  "moderate",
					},
				},
				SlotEvening: {
					{
						Title:       "Sunset Photography Walk",
						Description: "Capture beautiful sunset views from the best vantage points",
						Location:    "{destination} - Scenic viewpoints",
						Category:    "adventure",
						BaseCost:    15,
						Difficulty:  "easy",
					},
				},
			},
			ArchetypeCultural: {
				SlotMorning: {
					{
						Title:       "Historical Museum Tour",
						Description: "Discover the rich history and heritage of {destination}",
						Location:    "{destination} - Main History Museum",
						Category:    "cultural",
						BaseCost:    20,
						Difficulty:  "easy",
						Tips:        "Many museums offer audio guides in multiple languages",
					},
					{
						Title:       "Architectural Walking Tour",
						Description: "Explore iconic buildings and architectural landmarks",
						Location:    "{destination} - Historic District",
						Category:    "cultural",
						BaseCost:    15,
						Difficulty:  "easy",
					},
				},
				SlotAfternoon: {
					{
						Title:       "Art Gallery Experience",
						Description: "Visit contemporary and classical art collections",
						Location:    "{destination} - Art District",
						Category:    "cultural",
						BaseCost:    25,
						Difficulty:  "easy",
					},
					{
						Title:               "Cultural Performance",
						Description:         "Attend traditional music, dance, or theater performances",
						Location:            "{destination} - Cultural Center",
						Category:            "cultural",
						BaseCost:            45,
						ReservationRequired: true,
					},
				},
				SlotEvening: {
					{
						Title:               "Traditional Dinner Experience",
						Description:         "Enjoy authentic local cuisine in a cultural setting",
						Location:            "{destination} - Traditional Restaurant",
						Category:            "dining",
						BaseCost:            60,
						ReservationRequired: true,
					},
				},
			},
			ArchetypeFoodie: {
				SlotMorning: {
					{
						Title:       "Local Market Food Tour",
						Description: "Sample fresh local produce and street food",
						Location:    "{destination} - Central Market",
						Category:    "culinary",
						BaseCost:    30,
						Difficulty:  "easy",
					},
					{
						Title:       "Coffee Culture Experience",
						Description: "Learn about local coffee traditions and tastings",
						Location:    "{destination} - Historic Coffee District",
						Category:    "culinary",
						BaseCost:    20,
						Difficulty:  "easy",
					},
				},
				SlotAfternoon: {
					{
						Title:               "Cooking Class",
						Description:         "Learn to prepare traditional {destination} dishes",
						Location:            "{destination} - Culinary School",
						Category:            "culinary",
						BaseCost:            85,
						ReservationRequired: true,
						Tips:                "Classes often include lunch and recipes to take home",
					},
					{
						Title:       "Food Walking Tour",
						Description: "Taste your way through the best local eateries",
						Location:    "{destination} - Food District",
						Category:    "culinary",
						BaseCost:    55,
						Difficulty:  "easy",
					},
				},
				SlotEvening: {
					{
						Title:               "Fine Dining Experience",
						Description:         "Enjoy a multi-course meal at a renowned restaurant",
						Location:            "{destination} - Upscale Restaurant",
						Category:            "dining",
						BaseCost:            120,
						ReservationRequired: true,
					},
					{
						Title:       "Wine Tasting Evening",
						Description: "Sample local wines with expert guidance",
						Location:    "{destination} - Wine Bar",
						Category:    "culinary",
						BaseCost:    45,
					},
				},
			},
			ArchetypeFamily: {
				SlotMorning: {
					{
						Title:         "Children's Museum Visit",
						Description:   "Interactive exhibits designed for young minds",
						Location:      "{destination} - Children's Museum",
						Category:      "family",
						BaseCost:      15,
						Difficulty:    "easy",
						Accessibility: map[string]bool{"family_friendly": true, "stroller_accessible": true},
					},
					{
						Title:         "Zoo or Aquarium Tour",
						Description:   "Meet amazing animals from around the world",
						Location:      "{destination} - Zoo/Aquarium",
						Category:      "family",
						BaseCost:      25,
						Accessibility: map[string]bool{"family_friendly": true},
					},
				},
				SlotAfternoon: {
					{
						Title:         "Family-Friendly Park Day",
						Description:   "Enjoy playgrounds, picnic areas, and outdoor activities",
						Location:      "{destination} - Central Park",
						Category:      "family",
						BaseCost:      5,
						Accessibility: map[string]bool{"family_friendly": true, "stroller_accessible": true},
					},
					{
						Title:         "Interactive Science Center",
						Description:   "Hands-on science experiments and demonstrations",
						Location:      "{destination} - Science Museum",
						Category:      "family",
						BaseCost:      20,
						Accessibility: map[string]bool{"family_friendly": true},
					},
				},
				SlotEvening: {
					{
						Title:         "Family Restaurant",
						Description:   "Kid-friendly dining with special menus",
						Location:      "{destination} - Family Restaurant",
						Category:      "dining",
						BaseCost:      40,
						Accessibility: map[string]bool{"family_friendly": true, "high_chairs": true},
					},
				},
			},
			ArchetypeMobility: {
				SlotMorning: {
					{
						Title:         "Accessible Museum Tour",
						Description:   "Fully accessible museum with elevator and wheelchair access",
						Location:      "{destination} - Accessible Museum",
						Category:      "cultural",
						BaseCost:      15,
						Accessibility: map[string]bool{"wheelchair_accessible": true, "elevator": true, "audio_guide": true},
					},
					{
						Title:         "Scenic Drive Tour",
						Description:   "Comfortable vehicle tour of city highlights",
						Location:      "{destination} - City Tour Route",
						Category:      "sightseeing",
						BaseCost:      35,
						Accessibility: map[string]bool{"wheelchair_accessible": true},
					},
				},
				SlotAfternoon: {
					{
						Title:         "Accessible Garden Visit",
						Description:   "Beautiful botanical gardens with paved paths",
						Location:      "{destination} - Botanical Gardens",
						Category:      "nature",
						BaseCost:      10,
						Accessibility: map[string]bool{"wheelchair_accessible": true, "paved_paths": true},
					},
				},
				SlotEvening: {
					{
						Title:         "Accessible Restaurant",
						Description:   "Fine dining with full accessibility features",
						Location:      "{destination} - Accessible Restaurant",
						Category:      "dining",
						BaseCost:      50,
						Accessibility: map[string]bool{"wheelchair_accessible": true, "accessible_restrooms": true},
					},
				},
			},
		},
		themes: map[Archetype][3]string{
			ArchetypeAdventure: {"Outdoor Exploration", "Active Adventures", "Nature & Thrills"},
			ArchetypeCultural:  {"Historical Discovery", "Art & Architecture", "Local Traditions"},
			ArchetypeFoodie:    {"Culinary Journey", "Taste Exploration", "Food & Culture"},
			ArchetypeFamily:    {"Family Fun", "Educational Adventures", "Kid-Friendly Activities"},
			ArchetypeMobility:  {"Comfortable Touring", "Accessible Exploration", "Relaxed Discovery"},
		},
	}
}
