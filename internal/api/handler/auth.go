package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chronosync/chronosync/internal/model"
	"github.com/chronosync/chronosync/internal/services/auth"
)

// AuthHandler handles credential registration and verification
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "invalid request body"})
		return
	}
	if req.Username == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "username and password are required"})
		return
	}

	if err := h.authService.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, model.ErrUsernameExists) {
			writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "Username already exists"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Player registered successfully"})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, detailResponse{Detail: "invalid request body"})
		return
	}

	if err := h.authService.Verify(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, detailResponse{Detail: "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Login successful"})
}

// Root handles GET /
func Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "ChronoSync API online"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
