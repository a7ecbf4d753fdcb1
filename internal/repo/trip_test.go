package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
	"github.com/wayfarer-travel/wayfarer/backend/internal/repo"
)

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	return domain.Trip{
		Destination: "Lisbon",
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TotalBudget: 2500,
		Travelers:   2,
		Notes:       "Test notes",
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.Destination, got.Destination)
	assert.True(t, got.StartDate.Equal(input.StartDate), "StartDate mismatch")
	assert.True(t, got.EndDate.Equal(input.EndDate), "EndDate mismatch")
	assert.Equal(t, input.TotalBudget, got.TotalBudget)
	assert.Equal(t, input.Travelers, got.Travelers)
	assert.Nil(t, got.PersonaID, "PersonaID should be nil when not provided")
	assert.Equal(t, input.Notes, got.Notes)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestTripRepo_Create_WithPersona(t *testing.T) {
	tx := newTestTx(t)
	trips := repo.NewTripRepo(tx)
	personas := repo.NewPersonaRepo(tx)
	ctx := context.Background()

	p, err := personas.Create(ctx, domain.Persona{Name: "Adventure Seeker"})
	require.NoError(t, err)

	input := tripFixture()
	input.PersonaID = &p.ID

	got, err := trips.Create(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, got.PersonaID)
	assert.Equal(t, p.ID, *got.PersonaID)
}

func TestTripRepo_GetByID(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Destination, got.Destination)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_List(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	t1 := tripFixture()
	t1.Destination = "Porto"

	t2 := tripFixture()
	t2.Destination = "Madrid"
	t2.StartDate = t1.StartDate.AddDate(0, 1, 0) // one month later
	t2.EndDate = t1.EndDate.AddDate(0, 1, 0)

	_, err := r.Create(ctx, t1)
	require.NoError(t, err)
	_, err = r.Create(ctx, t2)
	require.NoError(t, err)

	trips, err := r.List(ctx)

	require.NoError(t, err)
	require.GreaterOrEqual(t, len(trips), 2, "should return at least the two created trips")

	// List is ordered by start_date DESC — t2 (later start) should come first.
	var destinations []string
	for _, tr := range trips {
		destinations = append(destinations, tr.Destination)
	}
	assert.Contains(t, destinations, "Porto")
	assert.Contains(t, destinations, "Madrid")
}

func TestTripRepo_Update(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	created.Destination = "Seville"
	created.TotalBudget = 3200
	created.Notes = "Updated notes"

	updated, err := r.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Seville", updated.Destination)
	assert.Equal(t, float64(3200), updated.TotalBudget)
	assert.Equal(t, "Updated notes", updated.Notes)
	// updated_at should be refreshed — may be equal to created_at in fast tests,
	// but must not be zero.
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestTripRepo_Update_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	ghost := tripFixture()
	ghost.ID = uuid.New()

	_, err := r.Update(ctx, ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	err = r.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewTripRepo(newTestTx(t))
	ctx := context.Background()

	err := r.Delete(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
