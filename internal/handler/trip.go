package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
)

// defaults applied when a create/update request leaves them unset.
const (
	defaultTotalBudget = 1000
	defaultTravelers   = 1
)

// TripRequest is the JSON body for POST /trips and PUT /trips/{tripID}.
// TotalBudget and Travelers are pointers so an absent field can take the
// documented default rather than the zero value.
type TripRequest struct {
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	TotalBudget *float64           `json:"total_budget,omitempty"`
	Travelers   *int               `json:"travelers,omitempty"`
	PersonaID   *uuid.UUID         `json:"persona_id,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
}

// TripResponse is the JSON shape of a trip on the wire.
type TripResponse struct {
	ID          uuid.UUID          `json:"id"`
	Destination string             `json:"destination"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	TotalBudget float64            `json:"total_budget"`
	Travelers   int                `json:"travelers"`
	PersonaID   *uuid.UUID         `json:"persona_id,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := requestToTrip(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		respondServiceError(w, err, "persona not found")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondServiceError(w, err, "")
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "tripID")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "tripID")
	if !ok {
		return
	}

	trip, err := requestToTrip(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "tripID")
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip decodes and converts a TripRequest body into a domain.Trip,
// applying the budget and traveler defaults for absent fields.
func requestToTrip(r *http.Request) (domain.Trip, error) {
	var body TripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Trip{}, errors.New("request body is required and must be valid JSON")
	}

	t := domain.Trip{
		Destination: body.Destination,
		StartDate:   body.StartDate.Time,
		EndDate:     body.EndDate.Time,
		TotalBudget: defaultTotalBudget,
		Travelers:   defaultTravelers,
		PersonaID:   body.PersonaID,
	}
	if body.TotalBudget != nil {
		t.TotalBudget = *body.TotalBudget
	}
	if body.Travelers != nil {
		t.Travelers = *body.Travelers
	}
	if body.Notes != nil {
		t.Notes = *body.Notes
	}
	return t, nil
}

// tripToResponse converts a domain.Trip into its wire shape.
func tripToResponse(t domain.Trip) TripResponse {
	resp := TripResponse{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		TotalBudget: t.TotalBudget,
		Travelers:   t.Travelers,
		PersonaID:   t.PersonaID,
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   t.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if t.Notes != "" {
		resp.Notes = &t.Notes
	}
	return resp
}
