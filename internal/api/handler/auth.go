package handler

import (
	"encoding/json"
	"net/http"

	"github.com/PriyankaYambem/cloud-manager/internal/api/apierr"
	"github.com/PriyankaYambem/cloud-manager/internal/api/request"
	"github.com/PriyankaYambem/cloud-manager/internal/api/response"
	"github.com/PriyankaYambem/cloud-manager/internal/services/auth"
	"github.com/PriyankaYambem/cloud-manager/internal/session"
)

// AuthHandler handles the register/login/logout endpoints
type AuthHandler struct {
	authService *auth.Service
	cookies     session.CookieOptions
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, cookies session.CookieOptions) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("Invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewValidationError("Username and password are required"))
		return
	}

	if _, err := h.authService.Register(r.Context(), req.Username, req.Password); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Message(w, http.StatusCreated, "User registered successfully! You can now log in.")
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewValidationError("Invalid request body"))
		return
	}

	tok, _, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	session.SetCookie(w, tok, h.cookies)
	response.Message(w, http.StatusOK, "Logged in successfully!")
}

// Logout handles POST /api/logout. It succeeds whether or not a valid
// token was presented; the server holds no session table to invalidate.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.ClearCookie(w, h.cookies)
	response.Message(w, http.StatusOK, "Logged out successfully!")
}
