package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
)

// PersonaRepo defines the persistence operations for traveler personas.
type PersonaRepo interface {
	// Create inserts a new persona and returns the persisted record.
	Create(ctx context.Context, p domain.Persona) (domain.Persona, error)

	// GetByID retrieves a single persona by its UUID primary key.
	// Returns domain.ErrNotFound if no persona with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Persona, error)

	// List returns all personas ordered by name ascending.
	List(ctx context.Context) ([]domain.Persona, error)

	// Update overwrites the mutable fields of an existing persona.
	// Returns domain.ErrNotFound if no persona with that ID exists.
	Update(ctx context.Context, p domain.Persona) (domain.Persona, error)

	// Delete removes a persona by ID. Trips referencing it keep running with
	// persona_id set to NULL (ON DELETE SET NULL).
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgPersonaRepo is the Postgres implementation of PersonaRepo.
// The preferences blob round-trips through a JSONB column; pgx encodes the
// map via encoding/json without any manual marshalling.
type pgPersonaRepo struct {
	db db
}

// NewPersonaRepo constructs a PersonaRepo backed by the provided db connection.
func NewPersonaRepo(db db) PersonaRepo {
	return &pgPersonaRepo{db: db}
}

const personaColumns = `id, name, preferences, created_at, updated_at`

func (r *pgPersonaRepo) Create(ctx context.Context, p domain.Persona) (domain.Persona, error) {
	const q = `
		INSERT INTO personas (name, preferences)
		VALUES (@name, @preferences)
		RETURNING ` + personaColumns

	args := pgx.NamedArgs{
		"name":        p.Name,
		"preferences": preferencesOrEmpty(p.Preferences),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPersona(row)
	if err != nil {
		return domain.Persona{}, fmt.Errorf("repo.PersonaRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgPersonaRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Persona, error) {
	const q = `
		SELECT ` + personaColumns + `
		FROM personas
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanPersona(row)
	if err != nil {
		return domain.Persona{}, fmt.Errorf("repo.PersonaRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgPersonaRepo) List(ctx context.Context) ([]domain.Persona, error) {
	const q = `
		SELECT ` + personaColumns + `
		FROM personas
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PersonaRepo.List: %w", err)
	}
	defer rows.Close()

	var personas []domain.Persona
	for rows.Next() {
		p, err := scanPersona(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PersonaRepo.List: scan: %w", err)
		}
		personas = append(personas, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PersonaRepo.List: rows: %w", err)
	}

	return personas, nil
}

func (r *pgPersonaRepo) Update(ctx context.Context, p domain.Persona) (domain.Persona, error) {
	const q = `
		UPDATE personas
		SET name        = @name,
		    preferences = @preferences,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + personaColumns

	args := pgx.NamedArgs{
		"id":          p.ID,
		"name":        p.Name,
		"preferences": preferencesOrEmpty(p.Preferences),
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPersona(row)
	if err != nil {
		return domain.Persona{}, fmt.Errorf("repo.PersonaRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgPersonaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM personas WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PersonaRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PersonaRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// preferencesOrEmpty keeps the JSONB column NOT NULL friendly: a nil map
// is stored as an empty object, not SQL NULL.
func preferencesOrEmpty(prefs map[string]any) map[string]any {
	if prefs == nil {
		return map[string]any{}
	}
	return prefs
}

// scanPersona maps a single database row into a domain.Persona.
func scanPersona(s scanner) (domain.Persona, error) {
	var (
		p  domain.Persona
		id pgtype.UUID
	)

	err := s.Scan(&id, &p.Name, &p.Preferences, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Persona{}, domain.ErrNotFound
		}
		return domain.Persona{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	return p, nil
}
