package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
	"github.com/wayfarer-travel/wayfarer/backend/internal/itinerary"
	"github.com/wayfarer-travel/wayfarer/backend/internal/repo"
)

// ItineraryCache is the optional read-through cache for generated
// itineraries. A Get miss returns (nil, nil). Implemented by cache
// .ItineraryCache over Redis; a nil cache disables caching entirely.
type ItineraryCache interface {
	Get(ctx context.Context, tripID uuid.UUID) (*itinerary.GeneratedItinerary, error)
	Set(ctx context.Context, tripID uuid.UUID, gen itinerary.GeneratedItinerary) error
	Invalidate(ctx context.Context, tripID uuid.UUID) error
}

// ItineraryService orchestrates itinerary generation: it resolves the trip
// and its persona, runs the engine, persists the result, and keeps the
// cache warm. The engine itself never touches a data store.
type ItineraryService struct {
	trips       repo.TripRepo
	personas    repo.PersonaRepo
	itineraries repo.ItineraryRepo
	engine      *itinerary.Engine
	cache       ItineraryCache // may be nil
}

// NewItineraryService constructs an ItineraryService. Pass a nil cache to
// run without one.
func NewItineraryService(trips repo.TripRepo, personas repo.PersonaRepo, itineraries repo.ItineraryRepo, engine *itinerary.Engine, cache ItineraryCache) *ItineraryService {
	return &ItineraryService{
		trips:       trips,
		personas:    personas,
		itineraries: itineraries,
		engine:      engine,
		cache:       cache,
	}
}

// Generate produces and persists a fresh itinerary for the trip,
// replacing any previous one.
// Returns domain.ErrNotFound if the trip or its referenced persona does
// not exist; domain.ErrValidation if the trip parameters are rejected by
// the engine (stale rows predating the validation rules).
func (s *ItineraryService) Generate(ctx context.Context, tripID uuid.UUID) (itinerary.GeneratedItinerary, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return itinerary.GeneratedItinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	// Persona resolution happens here, never inside the engine: the engine
	// receives an already-resolved persona or nil.
	var persona *domain.Persona
	if trip.PersonaID != nil {
		p, err := s.personas.GetByID(ctx, *trip.PersonaID)
		if err != nil {
			return itinerary.GeneratedItinerary{}, fmt.Errorf("service.ItineraryService.Generate: persona: %w", err)
		}
		persona = &p
	}

	gen, err := s.engine.Generate(itinerary.Params{
		Destination: trip.Destination,
		StartDate:   trip.StartDate,
		EndDate:     trip.EndDate,
		Persona:     persona,
		TotalBudget: trip.TotalBudget,
		Travelers:   trip.Travelers,
	})
	if err != nil {
		if errors.Is(err, itinerary.ErrInvalidDateRange) || errors.Is(err, itinerary.ErrInvalidParameters) {
			return itinerary.GeneratedItinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w: %s", domain.ErrValidation, err)
		}
		return itinerary.GeneratedItinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	if _, err := s.itineraries.ReplaceForTrip(ctx, tripID, daysToDomain(tripID, gen)); err != nil {
		return itinerary.GeneratedItinerary{}, fmt.Errorf("service.ItineraryService.Generate: %w", err)
	}

	if s.cache != nil {
		// Best effort: a cache failure never fails the request.
		if err := s.cache.Set(ctx, tripID, gen); err != nil {
			slog.WarnContext(ctx, "itinerary cache set failed", "trip_id", tripID, "error", err)
		}
	}

	return gen, nil
}

// GetForTrip returns the trip's current itinerary, preferring the cached
// generated form and falling back to the persisted days.
// Returns domain.ErrNotFound if the trip exists but has no itinerary yet,
// or if the trip itself does not exist.
func (s *ItineraryService) GetForTrip(ctx context.Context, tripID uuid.UUID) (*itinerary.GeneratedItinerary, []domain.ItineraryDay, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, nil, fmt.Errorf("service.ItineraryService.GetForTrip: %w", err)
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tripID)
		if err != nil {
			slog.WarnContext(ctx, "itinerary cache get failed", "trip_id", tripID, "error", err)
		} else if cached != nil {
			return cached, nil, nil
		}
	}

	days, err := s.itineraries.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, nil, fmt.Errorf("service.ItineraryService.GetForTrip: %w", err)
	}
	if len(days) == 0 {
		return nil, nil, fmt.Errorf("service.ItineraryService.GetForTrip: %w", domain.ErrNotFound)
	}
	return nil, days, nil
}

// DeleteForTrip removes the trip's itinerary and invalidates the cache.
func (s *ItineraryService) DeleteForTrip(ctx context.Context, tripID uuid.UUID) error {
	if err := s.itineraries.DeleteByTripID(ctx, tripID); err != nil {
		return fmt.Errorf("service.ItineraryService.DeleteForTrip: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, tripID); err != nil {
			slog.WarnContext(ctx, "itinerary cache invalidate failed", "trip_id", tripID, "error", err)
		}
	}
	return nil
}

// daysToDomain maps the engine's generated days onto the persisted shape.
func daysToDomain(tripID uuid.UUID, gen itinerary.GeneratedItinerary) []domain.ItineraryDay {
	days := make([]domain.ItineraryDay, 0, len(gen.Itinerary))
	for _, d := range gen.Itinerary {
		day := domain.ItineraryDay{
			TripID:    tripID,
			DayNumber: d.DayNumber,
			Date:      mustParseDate(d.Date),
			DayOfWeek: d.DayOfWeek,
			Theme:     d.Theme,
			TotalCost: d.TotalCost,
		}
		for i, a := range d.Activities {
			day.Activities = append(day.Activities, domain.Activity{
				SlotIndex:           i,
				TimeSlot:            string(a.TimeSlot),
				Title:               a.Title,
				Description:         a.Description,
				StartTime:           a.StartTime,
				EndTime:             a.EndTime,
				DurationMinutes:     a.DurationMinutes,
				Location:            a.Location,
				Category:            a.Category,
				EstimatedCost:       a.EstimatedCost,
				ReservationRequired: a.ReservationRequired,
				Difficulty:          a.Difficulty,
				Accessibility:       a.Accessibility,
				Tips:                a.Tips,
			})
		}
		days = append(days, day)
	}
	return days
}

// mustParseDate parses an engine-emitted "2006-01-02" date. The engine is
// the only producer, so a parse failure is a programming error.
func mustParseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("service: bad engine date " + s)
	}
	return t
}
