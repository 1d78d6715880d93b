package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PriyankaYambem/cloud-manager/internal/api/handler"
	"github.com/PriyankaYambem/cloud-manager/internal/api/middleware"
	"github.com/PriyankaYambem/cloud-manager/internal/api/response"
	"github.com/PriyankaYambem/cloud-manager/internal/services/auth"
	"github.com/PriyankaYambem/cloud-manager/internal/services/files"
	"github.com/PriyankaYambem/cloud-manager/internal/services/token"
	"github.com/PriyankaYambem/cloud-manager/internal/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	AuthService   *auth.Service
	TokenService  *token.Service
	FilesService  *files.Service
	CookieOptions session.CookieOptions
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.CookieOptions)
	filesHandler := handler.NewFilesHandler(cfg.FilesService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.TokenService, cfg.CookieOptions)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required)
	api.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes
	protected := api.PathPrefix("/files").Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("", filesHandler.List).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
