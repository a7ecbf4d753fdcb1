// Package handler implements the HTTP handlers for the Wayfarer API.
// All handlers are methods on Server. Methods are split into
// domain-specific files (health.go, trip.go, persona.go, itinerary.go) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
	"github.com/wayfarer-travel/wayfarer/backend/internal/itinerary"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PersonaServicer defines the business operations the persona handlers
// depend on.
type PersonaServicer interface {
	Create(ctx context.Context, p domain.Persona) (domain.Persona, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Persona, error)
	List(ctx context.Context) ([]domain.Persona, error)
	Update(ctx context.Context, p domain.Persona) (domain.Persona, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItineraryServicer defines the generation operations the itinerary
// handlers depend on. GetForTrip returns either the cached generated form
// or the persisted days, never both.
type ItineraryServicer interface {
	Generate(ctx context.Context, tripID uuid.UUID) (itinerary.GeneratedItinerary, error)
	GetForTrip(ctx context.Context, tripID uuid.UUID) (*itinerary.GeneratedItinerary, []domain.ItineraryDay, error)
	DeleteForTrip(ctx context.Context, tripID uuid.UUID) error
}

// Server holds the handler dependencies for all API endpoints.
// Methods live in domain-specific files but all operate on this struct.
type Server struct {
	trips       TripServicer
	personas    PersonaServicer
	itineraries ItineraryServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, personas PersonaServicer, itineraries ItineraryServicer) *Server {
	return &Server{trips: trips, personas: personas, itineraries: itineraries}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes builds the chi router for the full REST surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/itinerary", s.GenerateItinerary)
			r.Get("/itinerary", s.GetItinerary)
			r.Delete("/itinerary", s.DeleteItinerary)
		})
	})

	r.Route("/personas", func(r chi.Router) {
		r.Post("/", s.CreatePersona)
		r.Get("/", s.ListPersonas)
		r.Route("/{personaID}", func(r chi.Router) {
			r.Get("/", s.GetPersona)
			r.Put("/", s.UpdatePersona)
			r.Delete("/", s.DeletePersona)
		})
	})

	return r
}

// urlUUID parses a UUID path parameter. The bool result is false when the
// parameter is malformed, in which case a 422 response has been written.
func urlUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", name+" must be a valid UUID")
		return uuid.UUID{}, false
	}
	return id, true
}
