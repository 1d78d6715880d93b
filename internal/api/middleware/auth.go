package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/PriyankaYambem/cloud-manager/internal/api/apierr"
	"github.com/PriyankaYambem/cloud-manager/internal/services/token"
	"github.com/PriyankaYambem/cloud-manager/internal/session"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Auth creates authentication middleware for the JSON API. Requests with
// no token are rejected before the downstream handler runs; requests with
// a rejected token additionally have their cookie cleared so the client
// stops retrying with a known-bad token.
func Auth(tokens *token.Service, cookies session.CookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := extractToken(r)
			if raw == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			identity, err := tokens.Verify(raw)
			if err != nil {
				session.ClearCookie(w, cookies)
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the session token from the request
func extractToken(r *http.Request) string {
	// Check Authorization header first (used by the CLI client)
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	// Fall back to the session cookie
	return session.TokenFromRequest(r)
}

// GetIdentity returns the authenticated identity from the request context
func GetIdentity(ctx context.Context) *token.Identity {
	identity, _ := ctx.Value(identityContextKey).(*token.Identity)
	return identity
}

// MustGetIdentity returns the authenticated identity or panics
func MustGetIdentity(ctx context.Context) *token.Identity {
	identity := GetIdentity(ctx)
	if identity == nil {
		panic("no identity in context - auth middleware not applied?")
	}
	return identity
}
