package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"parkspot/internal/db"
	"parkspot/internal/service"
	"parkspot/internal/store"
)

type AuthHandler struct {
	Service  service.AuthService
	validate *validator.Validate
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc, validate: newValidator()}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Login(r.Context(), req.Email, req.Password, db.Role(req.Role))
	if err != nil {
		if errors.Is(err, store.ErrAuthSuperseded) {
			http.Error(w, "Login superseded by a newer attempt", http.StatusConflict)
			return
		}
		http.Error(w, "Could not log in", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Signup(r.Context(), req.Name, req.Email, req.Password, db.Role(req.Role))
	if err != nil {
		if errors.Is(err, store.ErrAuthSuperseded) {
			http.Error(w, "Signup superseded by a newer attempt", http.StatusConflict)
			return
		}
		http.Error(w, "Could not sign up", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Service.Logout()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}
