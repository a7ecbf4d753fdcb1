package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
	"github.com/wayfarer-travel/wayfarer/backend/internal/repo"
)

// PersonaService implements business logic for traveler persona operations.
type PersonaService struct {
	personas repo.PersonaRepo
}

// NewPersonaService constructs a PersonaService backed by the provided repo.
func NewPersonaService(personas repo.PersonaRepo) *PersonaService {
	return &PersonaService{personas: personas}
}

// Create validates and persists a new persona.
// Returns domain.ErrValidation if the name is missing.
func (s *PersonaService) Create(ctx context.Context, p domain.Persona) (domain.Persona, error) {
	if err := validatePersona(p); err != nil {
		return domain.Persona{}, err
	}
	result, err := s.personas.Create(ctx, p)
	if err != nil {
		return domain.Persona{}, fmt.Errorf("service.PersonaService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single persona by ID.
func (s *PersonaService) GetByID(ctx context.Context, id uuid.UUID) (domain.Persona, error) {
	result, err := s.personas.GetByID(ctx, id)
	if err != nil {
		return domain.Persona{}, fmt.Errorf("service.PersonaService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all personas ordered by name.
// Always returns a non-nil slice so callers can safely range over it.
func (s *PersonaService) List(ctx context.Context) ([]domain.Persona, error) {
	personas, err := s.personas.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PersonaService.List: %w", err)
	}
	if personas == nil {
		return []domain.Persona{}, nil
	}
	return personas, nil
}

// Update validates and persists changes to an existing persona.
func (s *PersonaService) Update(ctx context.Context, p domain.Persona) (domain.Persona, error) {
	if err := validatePersona(p); err != nil {
		return domain.Persona{}, err
	}
	result, err := s.personas.Update(ctx, p)
	if err != nil {
		return domain.Persona{}, fmt.Errorf("service.PersonaService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a persona by ID. Trips referencing it fall back to the
// cultural default on their next generation (persona_id becomes NULL).
func (s *PersonaService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.personas.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PersonaService.Delete: %w", err)
	}
	return nil
}

// validatePersona enforces business rules common to both Create and Update.
func validatePersona(p domain.Persona) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return nil
}
