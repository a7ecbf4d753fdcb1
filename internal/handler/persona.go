package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wayfarer-travel/wayfarer/backend/internal/domain"
)

// PersonaRequest is the JSON body for POST /personas and
// PUT /personas/{personaID}. Preferences is free-form and stored verbatim.
type PersonaRequest struct {
	Name        string         `json:"name"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// CreatePersona handles POST /personas.
func (s *Server) CreatePersona(w http.ResponseWriter, r *http.Request) {
	p, err := requestToPersona(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	created, err := s.personas.Create(r.Context(), p)
	if err != nil {
		respondServiceError(w, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// ListPersonas handles GET /personas.
func (s *Server) ListPersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := s.personas.List(r.Context())
	if err != nil {
		respondServiceError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": personas})
}

// GetPersona handles GET /personas/{personaID}.
func (s *Server) GetPersona(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "personaID")
	if !ok {
		return
	}

	p, err := s.personas.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "persona not found")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// UpdatePersona handles PUT /personas/{personaID}.
func (s *Server) UpdatePersona(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "personaID")
	if !ok {
		return
	}

	p, err := requestToPersona(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	p.ID = id

	updated, err := s.personas.Update(r.Context(), p)
	if err != nil {
		respondServiceError(w, err, "persona not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeletePersona handles DELETE /personas/{personaID}.
func (s *Server) DeletePersona(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "personaID")
	if !ok {
		return
	}

	if err := s.personas.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err, "persona not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// requestToPersona decodes a PersonaRequest body into a domain.Persona.
func requestToPersona(r *http.Request) (domain.Persona, error) {
	var body PersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Persona{}, errors.New("request body is required and must be valid JSON")
	}
	return domain.Persona{Name: body.Name, Preferences: body.Preferences}, nil
}
