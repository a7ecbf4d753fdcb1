package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
	"github.com/wayfarer-travel/wayfarer/backend/internal/handler"
	"github.com/wayfarer-travel/wayfarer/backend/internal/itinerary"
)

// mockItineraryServicer is a test double for handler.ItineraryServicer.
type mockItineraryServicer struct {
	generate      func(ctx context.Context, tripID uuid.UUID) (itinerary.GeneratedItinerary, error)
	getForTrip    func(ctx context.Context, tripID uuid.UUID) (*itinerary.GeneratedItinerary, []domain.ItineraryDay, error)
	deleteForTrip func(ctx context.Context, tripID uuid.UUID) error
}

func (m *mockItineraryServicer) Generate(ctx context.Context, tripID uuid.UUID) (itinerary.GeneratedItinerary, error) {
	return m.generate(ctx, tripID)
}
func (m *mockItineraryServicer) GetForTrip(ctx context.Context, tripID uuid.UUID) (*itinerary.GeneratedItinerary, []domain.ItineraryDay, error) {
	return m.getForTrip(ctx, tripID)
}
func (m *mockItineraryServicer) DeleteForTrip(ctx context.Context, tripID uuid.UUID) error {
	return m.deleteForTrip(ctx, tripID)
}

var _ handler.ItineraryServicer = (*mockItineraryServicer)(nil)

func newItineraryHandler(svc handler.ItineraryServicer) http.Handler {
	return handler.NewServer(nil, nil, svc).Routes()
}

func generatedFixture() itinerary.GeneratedItinerary {
	return itinerary.GeneratedItinerary{
		Destination: "Barcelona",
		StartDate:   "2026-05-04",
		EndDate:     "2026-05-06",
		Days:        3,
		TotalBudget: 1800,
		Travelers:   2,
		Archetype:   itinerary.ArchetypeCultural,
		Persona:     "General Traveler",
	}
}

// ---- POST /trips/{tripID}/itinerary ----------------------------------------

func TestGenerateItinerary_201(t *testing.T) {
	tripID := uuid.New()
	svc := &mockItineraryServicer{
		generate: func(_ context.Context, id uuid.UUID) (itinerary.GeneratedItinerary, error) {
			require.Equal(t, tripID, id)
			return generatedFixture(), nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/itinerary", nil)
	rec := httptest.NewRecorder()
	newItineraryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp itinerary.GeneratedItinerary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Barcelona", resp.Destination)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, itinerary.ArchetypeCultural, resp.Archetype)
}

func TestGenerateItinerary_404_TripMissing(t *testing.T) {
	svc := &mockItineraryServicer{
		generate: func(_ context.Context, _ uuid.UUID) (itinerary.GeneratedItinerary, error) {
			return itinerary.GeneratedItinerary{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/itinerary", nil)
	rec := httptest.NewRecorder()
	newItineraryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateItinerary_422_InvalidTrip(t *testing.T) {
	svc := &mockItineraryServicer{
		generate: func(_ context.Context, _ uuid.UUID) (itinerary.GeneratedItinerary, error) {
			return itinerary.GeneratedItinerary{}, fmt.Errorf("%w: end date before start date", domain.ErrValidation)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/itinerary", nil)
	rec := httptest.NewRecorder()
	newItineraryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateItinerary_422_BadUUID(t *testing.T) {
	svc := &mockItineraryServicer{} // must not be reached

	req := httptest.NewRequest(http.MethodPost, "/trips/not-a-uuid/itinerary", nil)
	rec := httptest.NewRecorder()
	newItineraryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- GET /trips/{tripID}/itinerary -----------------------------------------

func TestGetItinerary_200_Cached(t *testing.T) {
	gen := generatedFixture()
	svc := &mockItineraryServicer{
		getForTrip: func(_ context.Context, _ uuid.UUID) (*itinerary.GeneratedItinerary, []domain.ItineraryDay, error) {
			return &gen, nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/itinerary", nil)
	rec := httptest.NewRecorder()
	newItineraryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp itinerary.GeneratedItinerary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Barcelona", resp.Destination)
}

func TestGetItinerary_200_PersistedDays(t *testing.T) {
	days := []domain.ItineraryDay{{DayNumber: 1}, {DayNumber: 2}}
	svc := &mockItineraryServicer{
		getForTrip: func(_ context.Context, _ uuid.UUID) (*itinerary.GeneratedItinerary, []domain.ItineraryDay, error) {
			return nil, days, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/itinerary", nil)
	rec := httptest.NewRecorder()
	newItineraryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ItineraryDaysResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Days, 2)
	assert.Equal(t, 1, resp.Days[0].DayNumber)
}

func TestGetItinerary_404_NoneGenerated(t *testing.T) {
	svc := &mockItineraryServicer{
		getForTrip: func(_ context.Context, _ uuid.UUID) (*itinerary.GeneratedItinerary, []domain.ItineraryDay, error) {
			return nil, nil, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/itinerary", nil)
	rec := httptest.NewRecorder()
	newItineraryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- DELETE /trips/{tripID}/itinerary --------------------------------------

func TestDeleteItinerary_204(t *testing.T) {
	svc := &mockItineraryServicer{
		deleteForTrip: func(_ context.Context, _ uuid.UUID) error { return nil },
	}

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+uuid.NewString()+"/itinerary", nil)
	rec := httptest.NewRecorder()
	newItineraryHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
