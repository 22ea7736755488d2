package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/issue"
	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/transport/http/middleware"
)

// sessionLocation returns the caller's selected location, or "" when the
// request is anonymous or no location was set.
func sessionLocation(r *http.Request) string {
	if p, ok := middleware.PrincipalFromContext(r.Context()); ok && p.LocationID != nil {
		return *p.LocationID
	}
	return ""
}

// IssueHandler handles issue reporting, triage and engagement endpoints.
type IssueHandler struct {
	svc *issue.Service
}

func NewIssueHandler(svc *issue.Service) *IssueHandler {
	return &IssueHandler{svc: svc}
}

// Create accepts reports from authenticated and anonymous callers alike.
func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reporterID := ""
	if p, ok := middleware.PrincipalFromContext(r.Context()); ok {
		reporterID = p.UserID
	}
	i, err := h.svc.Create(r.Context(), reporterID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, i)
}

func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	i, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, i)
}

// List applies the query-string filter. An absent location_id falls back to
// the caller's session location; an explicit one always wins.
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.IssueFilter{
		Status:     q.Get("status"),
		Type:       q.Get("type"),
		Priority:   q.Get("priority"),
		LocationID: q.Get("location_id"),
	}
	if f.LocationID == "" {
		f.LocationID = sessionLocation(r)
	}
	issues, err := h.svc.List(r.Context(), f)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

// UpdateStatus moves an issue through the triage lifecycle.
func (h *IssueHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeError(w, http.StatusBadRequest, "status required")
		return
	}
	i, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, i)
}

func (h *IssueHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.svc.AddComment(r.Context(), chi.URLParam(r, "id"), p.UserID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *IssueHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListComments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// Vote records the caller's one vote on an issue. An absent body counts as
// an upvote.
func (h *IssueHandler) Vote(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	req := struct {
		Vote *bool `json:"vote"`
	}{}
	_ = json.NewDecoder(r.Body).Decode(&req)
	upvote := true
	if req.Vote != nil {
		upvote = *req.Vote
	}
	v, err := h.svc.CastVote(r.Context(), chi.URLParam(r, "id"), p.UserID, upvote)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}
