package handler

import (
	"net/http"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
)

// ItineraryDaysResponse is the JSON body when the itinerary is served from
// the persisted days rather than the cache.
type ItineraryDaysResponse struct {
	Days []domain.ItineraryDay `json:"days"`
}

// GenerateItinerary handles POST /trips/{tripID}/itinerary. It runs the
// generation engine for the trip and replaces any previous itinerary.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlUUID(w, r, "tripID")
	if !ok {
		return
	}

	gen, err := s.itineraries.Generate(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusCreated, gen)
}

// GetItinerary handles GET /trips/{tripID}/itinerary. The cached generated
// itinerary is preferred; otherwise the persisted days are returned. 404
// when the trip has no itinerary yet.
func (s *Server) GetItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlUUID(w, r, "tripID")
	if !ok {
		return
	}

	gen, days, err := s.itineraries.GetForTrip(r.Context(), tripID)
	if err != nil {
		respondServiceError(w, err, "itinerary not found")
		return
	}

	if gen != nil {
		writeJSON(w, http.StatusOK, gen)
		return
	}
	writeJSON(w, http.StatusOK, ItineraryDaysResponse{Days: days})
}

// DeleteItinerary handles DELETE /trips/{tripID}/itinerary.
func (s *Server) DeleteItinerary(w http.ResponseWriter, r *http.Request) {
	tripID, ok := urlUUID(w, r, "tripID")
	if !ok {
		return
	}

	if err := s.itineraries.DeleteForTrip(r.Context(), tripID); err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
