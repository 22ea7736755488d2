package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sanjay-dhavanam/CivicConnect/internal/application/session"
	"github.com/sanjay-dhavanam/CivicConnect/internal/transport/http/middleware"
)

// SessionHandler handles login, logout and session-scoped state.
type SessionHandler struct {
	svc    session.Service
	secure bool
}

// NewSessionHandler builds the handler; secure controls the cookie's Secure
// flag (off for local HTTP development).
func NewSessionHandler(svc session.Service, secure bool) *SessionHandler {
	return &SessionHandler{svc: svc, secure: secure}
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, sess, err := h.svc.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		httpError(w, err)
		return
	}
	h.setCookie(w, sess.Token, sess.ExpiresAt)
	writeJSON(w, http.StatusOK, AuthEnvelope{User: u, Message: "logged in"})
}

func (h *SessionHandler) GovtLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	u, sess, err := h.svc.GovtLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		httpError(w, err)
		return
	}
	h.setCookie(w, sess.Token, sess.ExpiresAt)
	writeJSON(w, http.StatusOK, AuthEnvelope{User: u, Message: "logged in"})
}

// Logout destroys the session behind the cookie, if any, and clears the
// cookie either way.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(middleware.SessionCookie); err == nil && c.Value != "" {
		_ = h.svc.Logout(r.Context(), c.Value)
	}
	h.clearCookie(w)
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "logged out"})
}

func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	u, _, err := h.svc.Current(r.Context(), p.Token)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{User: u})
}

// SetLocation stores the caller's selected location on the session.
func (h *SessionHandler) SetLocation(w http.ResponseWriter, r *http.Request) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req struct {
		LocationID string `json:"location_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.LocationID == "" {
		writeError(w, http.StatusBadRequest, "location_id required")
		return
	}
	if err := h.svc.SetLocation(r.Context(), p.Token, req.LocationID); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "location updated"})
}

func (h *SessionHandler) setCookie(w http.ResponseWriter, token string, expiresAt int64) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *SessionHandler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
