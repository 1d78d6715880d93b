package middleware

import (
	"log/slog"
	"net/http"

	"github.com/PriyankaYambem/cloud-manager/internal/middleware"
)

// Logging creates request logging middleware for the web surface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}
