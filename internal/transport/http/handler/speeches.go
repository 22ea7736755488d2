package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/speech"
	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
)

// SpeechHandler handles parliamentary speech endpoints.
type SpeechHandler struct {
	svc *speech.Service
}

func NewSpeechHandler(svc *speech.Service) *SpeechHandler {
	return &SpeechHandler{svc: svc}
}

func (h *SpeechHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.SpeechFilter{
		House:     q.Get("house"),
		SpeakerID: q.Get("speaker_id"),
		Language:  q.Get("language"),
	}
	speeches, err := h.svc.List(r.Context(), f)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, speeches)
}

func (h *SpeechHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *SpeechHandler) Translate(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("language")
	if lang == "" {
		writeError(w, http.StatusBadRequest, "language required")
		return
	}
	t, err := h.svc.Translate(r.Context(), chi.URLParam(r, "id"), lang)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}
