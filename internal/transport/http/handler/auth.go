package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sanjay-dhavanam/CivicConnect/internal/application/auth"
	"github.com/sanjay-dhavanam/CivicConnect/internal/domain"
	"github.com/sanjay-dhavanam/CivicConnect/internal/pkg/validate"
)

// AuthHandler handles the OTP verification endpoints.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.OTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	expires, err := h.svc.RequestCode(r.Context(), req.Phone)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OTPEnvelope{
		Message:   "OTP sent",
		ExpiresAt: expires.Unix(),
	})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.OTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ok, err := h.svc.VerifyCode(r.Context(), req.Phone, req.Code)
	if err != nil {
		httpError(w, err)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid or expired OTP")
		return
	}
	writeJSON(w, http.StatusOK, OTPEnvelope{Message: "phone verified", Verified: true})
}
