package httpx

import (
	"net/http"
	"time"
)

// SessionCookieName is the fixed name of the admin session cookie.
const SessionCookieName = "studio_session"

// sessionCookieMaxAge matches the session token lifetime of 7 days.
const sessionCookieMaxAge = int(7 * 24 * time.Hour / time.Second)

// SessionCookieOptions carries the deployment-dependent cookie attributes.
// Secure is set for every deployment except local development; Domain is
// empty unless APP_COOKIE_DOMAIN widens the cookie's scope.
type SessionCookieOptions struct {
	Secure bool
	Domain string
}

// NewSessionCookie builds the session cookie carrying the signed token.
// All session cookies go through this constructor so the security attributes
// (HttpOnly, SameSite=Strict, Path=/) cannot drift between call sites.
func NewSessionCookie(token string, opts SessionCookieOptions) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   opts.Domain,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   sessionCookieMaxAge,
	}
}

// ClearSessionCookie builds the cookie-clearing variant: empty value,
// immediate expiry, same attributes as NewSessionCookie otherwise. The
// attributes must match or browsers treat it as a different cookie.
func ClearSessionCookie(opts SessionCookieOptions) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   opts.Domain,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	}
}

// SessionTokenFromRequest extracts the session token from the request cookie.
// The second return value reports whether the cookie was present at all,
// letting callers distinguish "no cookie" (401) from "bad token" (403).
func SessionTokenFromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}
	return c.Value, true
}
