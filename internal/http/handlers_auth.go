// Package httpx provides HTTP handlers and utilities for the studio site API.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
	"github.com/lodestone-games/studio-site/internal/service"
)

const (
	adminHomePath  = "/admin"
	adminLoginPath = "/admin/login"
)

// AuthHandlers provides HTTP handlers for the login, callback, session-check,
// and logout flows.
type AuthHandlers struct {
	Svc *service.AuthService

	// Cookies holds the deployment-dependent session cookie attributes.
	Cookies SessionCookieOptions

	// AllowDevAuth enables the dev bypass callback and direct-login routes.
	// Never set in production deployments.
	AllowDevAuth bool

	// DevIdentity is the identity minted by the direct-login route.
	DevIdentity domainauth.Identity

	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login handles the login initiation endpoint.
// GET /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.Svc.BeginLogin(), http.StatusFound)
}

// Callback handles the OAuth callback endpoint.
// GET /auth/callback?code=<code> or ?error=<provider_error>.
// Every denial becomes a login-page redirect with an error code; the browser
// never sees a raw error page.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	h.completeLogin(w, r, service.CompleteLoginInput{
		Code:       r.URL.Query().Get("code"),
		ErrorParam: r.URL.Query().Get("error"),
	})
}

// DevCallback handles the development bypass callback endpoint.
// GET /auth/dev/callback?code=<code>. Identical to Callback except the guild
// membership check is skipped. Refused outside development.
func (h *AuthHandlers) DevCallback(w http.ResponseWriter, r *http.Request) {
	if !h.AllowDevAuth {
		h.writeDevAuthForbidden(w)
		return
	}
	h.completeLogin(w, r, service.CompleteLoginInput{
		Code:                r.URL.Query().Get("code"),
		ErrorParam:          r.URL.Query().Get("error"),
		SkipMembershipCheck: true,
	})
}

func (h *AuthHandlers) completeLogin(w http.ResponseWriter, r *http.Request, in service.CompleteLoginInput) {
	result, reason := h.Svc.CompleteLogin(r.Context(), in)
	if reason != domainauth.DenyNone {
		h.logger().InfoContext(r.Context(), "login denied", "reason", string(reason))
		http.Redirect(w, r, adminLoginPath+"?error="+string(reason), http.StatusFound)
		return
	}

	http.SetCookie(w, NewSessionCookie(result.Token, h.Cookies))
	h.logger().InfoContext(r.Context(), "login completed",
		"principal", result.Principal.ID, "admin", result.Principal.IsAdmin)
	http.Redirect(w, r, adminHomePath, http.StatusFound)
}

// DevLogin handles the development direct-login endpoint.
// GET|POST /auth/dev/login. Mints a session for the configured dev identity
// without contacting the provider. Returns 403 JSON in production.
func (h *AuthHandlers) DevLogin(w http.ResponseWriter, r *http.Request) {
	if !h.AllowDevAuth {
		h.writeDevAuthForbidden(w)
		return
	}

	result, err := h.Svc.DirectLogin(h.DevIdentity)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "login_failed", err)
		return
	}

	http.SetCookie(w, NewSessionCookie(result.Token, h.Cookies))
	http.Redirect(w, r, adminHomePath, http.StatusFound)
}

// Session handles the session-check endpoint.
// GET /auth/session. 401 when no cookie is present, 403 when the token does
// not verify or the principal lacks the admin flag, 200 with the principal
// otherwise.
func (h *AuthHandlers) Session(w http.ResponseWriter, r *http.Request) {
	token, ok := SessionTokenFromRequest(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "authentication_required", errors.New("no session cookie"))
		return
	}

	principal := h.Svc.CheckSession(token)
	if principal == nil || !principal.IsAdmin {
		writeErr(w, http.StatusForbidden, "invalid_session", errors.New("session is invalid or lacks admin access"))
		return
	}

	writeJSON(w, http.StatusOK, principal)
}

// Logout handles the logout endpoint.
// GET|POST /auth/logout. Unconditionally clears the cookie and reports
// success, regardless of prior session state.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, ClearSessionCookie(h.Cookies))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandlers) writeDevAuthForbidden(w http.ResponseWriter) {
	writeErr(w, http.StatusForbidden, "dev_auth_disabled", errors.New("development login is not available"))
}
