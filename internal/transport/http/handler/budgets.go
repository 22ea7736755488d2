package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sanjay-dhavanam/CivicConnect/internal/application/budget"
	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// BudgetHandler handles public spending endpoints.
type BudgetHandler struct {
	svc *budget.Service
}

func NewBudgetHandler(svc *budget.Service) *BudgetHandler {
	return &BudgetHandler{svc: svc}
}

// List applies the query-string filter; an absent location_id falls back to
// the caller's session location.
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.BudgetFilter{
		Category:   q.Get("category"),
		FiscalYear: q.Get("fiscal_year"),
		Status:     q.Get("status"),
		LocationID: q.Get("location_id"),
	}
	if f.LocationID == "" {
		f.LocationID = sessionLocation(r)
	}
	budgets, err := h.svc.List(r.Context(), f)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, budgets)
}

func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	b, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}
