package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sanjay-dhavanam/CivicConnect/internal/application/representative"
	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// RepresentativeHandler handles the elected-official directory endpoints.
type RepresentativeHandler struct {
	svc *representative.Service
}

func NewRepresentativeHandler(svc *representative.Service) *RepresentativeHandler {
	return &RepresentativeHandler{svc: svc}
}

// List applies the query-string filter; an absent location_id falls back to
// the caller's session location.
func (h *RepresentativeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.RepresentativeFilter{
		Position:   q.Get("position"),
		Party:      q.Get("party"),
		LocationID: q.Get("location_id"),
	}
	if f.LocationID == "" {
		f.LocationID = sessionLocation(r)
	}
	reps, err := h.svc.List(r.Context(), f)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reps)
}

func (h *RepresentativeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateRepresentativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rep, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}
