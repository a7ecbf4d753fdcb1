// Package service contains the business logic for the Wayfarer API.
// Services validate inputs, enforce business rules, and orchestrate repo
// and engine calls. No SQL lives here — services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
	"github.com/wayfarer-travel/wayfarer/backend/internal/repo"
)

// TripService implements business logic for Trip operations.
// It holds the persona repo because attaching a persona to a trip requires
// verifying the persona exists.
type TripService struct {
	trips    repo.TripRepo
	personas repo.PersonaRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, personas repo.PersonaRepo) *TripService {
	return &TripService{trips: trips, personas: personas}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if input violates business rules.
// Returns domain.ErrNotFound if the referenced persona does not exist.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if err := s.checkPersona(ctx, trip.PersonaID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by start date descending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and updates an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip (or a newly referenced persona) does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if err := s.checkPersona(ctx, trip.PersonaID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID. Its itinerary days cascade in the database.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// checkPersona verifies the referenced persona exists. A nil reference is
// always fine — trips without a persona generate the cultural default.
func (s *TripService) checkPersona(ctx context.Context, personaID *uuid.UUID) error {
	if personaID == nil {
		return nil
	}
	if _, err := s.personas.GetByID(ctx, *personaID); err != nil {
		return err
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Destination must be non-empty (whitespace-only is rejected).
//   - EndDate must not be before StartDate.
//   - TotalBudget must not be negative.
//   - Travelers must be at least 1.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if trip.TotalBudget < 0 {
		return fmt.Errorf("%w: total_budget must not be negative", domain.ErrValidation)
	}
	if trip.Travelers < 1 {
		return fmt.Errorf("%w: travelers must be at least 1", domain.ErrValidation)
	}
	return nil
}
