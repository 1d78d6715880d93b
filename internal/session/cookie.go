package session

import (
	"net/http"
	"time"
)

// CookieName is the session token cookie
const CookieName = "token"

// CookieOptions defines how session cookies are issued
type CookieOptions struct {
	// TTL is the cookie lifetime, matching the token's own expiry
	TTL time.Duration
	// Secure marks the cookie for encrypted transport only
	Secure bool
}

// SetCookie delivers the session token to the client. The cookie is
// HttpOnly so page scripts cannot read it.
func SetCookie(w http.ResponseWriter, token string, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie instructs the client to discard its session token
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest extracts the session token cookie from a request.
// Returns the empty string if the cookie is absent.
func TokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
