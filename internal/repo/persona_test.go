package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
	"github.com/wayfarer-travel/wayfarer/backend/internal/repo"
)

// personaFixture returns a domain.Persona with a preferences blob exercising
// the JSONB round-trip (nested values, mixed types).
func personaFixture() domain.Persona {
	return domain.Persona{
		Name: "Foodie Explorer",
		Preferences: map[string]any{
			"cuisine":      []any{"seafood", "tapas"},
			"pace":         "relaxed",
			"maxWalkingKm": float64(5),
		},
	}
}

func TestPersonaRepo_Create(t *testing.T) {
	r := repo.NewPersonaRepo(newTestTx(t))
	ctx := context.Background()

	input := personaFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Preferences, got.Preferences, "preferences should survive the JSONB round-trip")
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestPersonaRepo_Create_NilPreferences(t *testing.T) {
	r := repo.NewPersonaRepo(newTestTx(t))
	ctx := context.Background()

	got, err := r.Create(ctx, domain.Persona{Name: "Minimalist"})

	require.NoError(t, err)
	// A nil map is stored as an empty JSON object, never SQL NULL.
	assert.NotNil(t, got.Preferences)
	assert.Empty(t, got.Preferences)
}

func TestPersonaRepo_GetByID(t *testing.T) {
	r := repo.NewPersonaRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, personaFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
}

func TestPersonaRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewPersonaRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPersonaRepo_List(t *testing.T) {
	r := repo.NewPersonaRepo(newTestTx(t))
	ctx := context.Background()

	p1 := personaFixture()
	p1.Name = "Zelda"
	p2 := personaFixture()
	p2.Name = "Alice"

	_, err := r.Create(ctx, p1)
	require.NoError(t, err)
	_, err = r.Create(ctx, p2)
	require.NoError(t, err)

	personas, err := r.List(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(personas), 2)

	// List is ordered by name ASC — Alice before Zelda.
	var alice, zelda int
	for i, p := range personas {
		switch p.Name {
		case "Alice":
			alice = i
		case "Zelda":
			zelda = i
		}
	}
	assert.Less(t, alice, zelda, "personas should be ordered by name")
}

func TestPersonaRepo_Update(t *testing.T) {
	r := repo.NewPersonaRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, personaFixture())
	require.NoError(t, err)

	created.Name = "Foodie Explorer v2"
	created.Preferences = map[string]any{"pace": "fast"}

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Foodie Explorer v2", updated.Name)
	assert.Equal(t, map[string]any{"pace": "fast"}, updated.Preferences)
}

func TestPersonaRepo_Update_NotFound(t *testing.T) {
	r := repo.NewPersonaRepo(newTestTx(t))
	ctx := context.Background()

	ghost := personaFixture()
	ghost.ID = uuid.New()

	_, err := r.Update(ctx, ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPersonaRepo_Delete(t *testing.T) {
	r := repo.NewPersonaRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, personaFixture())
	require.NoError(t, err)

	err = r.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestPersonaRepo_Delete_DetachesTrips verifies the ON DELETE SET NULL
// behaviour: deleting a persona leaves its trips in place with a nil
// persona reference.
func TestPersonaRepo_Delete_DetachesTrips(t *testing.T) {
	tx := newTestTx(t)
	personas := repo.NewPersonaRepo(tx)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	p, err := personas.Create(ctx, personaFixture())
	require.NoError(t, err)

	trip := tripFixture()
	trip.PersonaID = &p.ID
	created, err := trips.Create(ctx, trip)
	require.NoError(t, err)

	require.NoError(t, personas.Delete(ctx, p.ID))

	got, err := trips.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PersonaID, "trip should survive persona deletion with persona_id cleared")
}
