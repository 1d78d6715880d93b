package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PriyankaYambem/cloud-manager/internal/services/token"
	"github.com/PriyankaYambem/cloud-manager/internal/session"
	"github.com/PriyankaYambem/cloud-manager/internal/web/handler"
	"github.com/PriyankaYambem/cloud-manager/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	TokenService  *token.Service
	CookieOptions session.CookieOptions
	StaticDir     string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	authMiddleware := middleware.Auth(cfg.TokenService, cfg.CookieOptions)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	pageHandler := handler.NewPageHandler(cfg.StaticDir)

	// Static assets
	staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
	r.PathPrefix("/static/").Handler(staticHandler)

	// Entry point (login/register page, no auth)
	r.HandleFunc("/", pageHandler.Index).Methods(http.MethodGet)

	// Protected pages
	protected := r.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/dashboard", pageHandler.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/readme", pageHandler.Readme).Methods(http.MethodGet)

	return r
}
