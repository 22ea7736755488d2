package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sanjay-dhavanam/CivicConnect/internal/application/media"
)

// MediaHandler handles issue media uploads backed by object storage. The
// service may be nil when no bucket is configured; every endpoint then
// answers 503.
type MediaHandler struct {
	svc *media.Service
}

func NewMediaHandler(svc *media.Service) *MediaHandler {
	return &MediaHandler{svc: svc}
}

func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		writeError(w, http.StatusServiceUnavailable, "media storage not configured")
		return
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer f.Close()

	res, err := h.svc.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), f)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *MediaHandler) Download(w http.ResponseWriter, r *http.Request) {
	if h.svc == nil {
		writeError(w, http.StatusServiceUnavailable, "media storage not configured")
		return
	}
	rc, contentType, err := h.svc.Download(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, http.StatusNotFound, "media object not found")
		return
	}
	defer rc.Close()
	w.Header().Set("Content-Type", contentType)
	_, _ = io.Copy(w, rc)
}
