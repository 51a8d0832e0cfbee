package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/integrations/banxico"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/middleware"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/service"
)

type Handler struct {
	svc   *service.Service
	rates *banxico.Client
	log   *logrus.Logger
}

func NewHandler(svc *service.Service, rates *banxico.Client, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, rates: rates, log: log}
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			h.log.Errorf("Failed to encode response: %v", err)
		}
	}
}

// respondError maps service failures onto HTTP statuses: malformed input
// to 400, missing records to 404, everything else to an opaque 500.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case errors.Is(err, service.ErrNotFound):
		h.respondJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		h.log.Errorf("Request failed: %v", err)
		h.respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return false
	}
	return true
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

// Healthz reports liveness
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Register handles operator registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	user, err := h.svc.Register(req.Username, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, user)
}

// Login handles authentication and sets the session cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		h.respondJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	h.respondJSON(w, http.StatusOK, map[string]string{"username": req.Username})
}

// Logout clears the session cookie
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// ReferenceRate returns the suggested interest rate for new credits
func (h *Handler) ReferenceRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.rates.GetReferenceRate()
	if err != nil {
		h.respondJSON(w, http.StatusBadGateway, map[string]string{"error": "reference rate unavailable"})
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]float64{"reference_rate": rate})
}
