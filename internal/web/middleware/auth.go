package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/PriyankaYambem/cloud-manager/internal/services/token"
	"github.com/PriyankaYambem/cloud-manager/internal/session"
)

type contextKey string

const identityContextKey contextKey = "identity"

// GetIdentity retrieves the authenticated identity from the request context
// Returns nil if no identity is authenticated
func GetIdentity(ctx context.Context) *token.Identity {
	identity, _ := ctx.Value(identityContextKey).(*token.Identity)
	return identity
}

// Auth returns middleware that requires a valid session for browser pages.
// Requests without a token are redirected to the entry point with an
// explanatory message; requests with a rejected token additionally have
// their cookie cleared so the browser stops presenting it.
func Auth(tokens *token.Service, cookies session.CookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := session.TokenFromRequest(r)
			if raw == "" {
				redirectWithMessage(w, r, "Please log in")
				return
			}

			identity, err := tokens.Verify(raw)
			if err != nil {
				session.ClearCookie(w, cookies)
				redirectWithMessage(w, r, "Invalid session, please log in again")
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/?message="+url.QueryEscape(message), http.StatusSeeOther)
}
