package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
	"github.com/lodestone-games/studio-site/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth    *service.AuthService
	News    *service.NewsService
	Jobs    *service.JobPostingService
	Contact *service.ContactService

	// SecureCookies controls the Secure attribute on session cookies.
	SecureCookies bool
	// CookieDomain is the Domain attribute for session cookies; empty scopes
	// them to the request host.
	CookieDomain string
	// AllowDevAuth enables the dev bypass routes. Never set in production.
	AllowDevAuth bool
	// DevIdentity is minted by the direct-login route when AllowDevAuth is set.
	DevIdentity domainauth.Identity

	Logger *slog.Logger
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc: services.Auth,
		Cookies: SessionCookieOptions{
			Secure: services.SecureCookies,
			Domain: services.CookieDomain,
		},
		AllowDevAuth: services.AllowDevAuth,
		DevIdentity:  services.DevIdentity,
		Logger:       services.Logger,
	}
	registerAuthRoutes(mux, authHandlers)

	requireAdmin := RequireAdmin(services.Auth)

	if services.News != nil {
		registerNewsRoutes(mux, &NewsHandlers{Svc: services.News}, requireAdmin)
	}
	if services.Jobs != nil {
		registerJobPostingRoutes(mux, &JobPostingHandlers{Svc: services.Jobs}, requireAdmin)
	}
	if services.Contact != nil {
		registerContactRoutes(mux, &ContactHandlers{Svc: services.Contact}, requireAdmin)
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("GET /auth/dev/callback", h.DevCallback)
	mux.HandleFunc("GET /auth/dev/login", h.DevLogin)
	mux.HandleFunc("POST /auth/dev/login", h.DevLogin)
	mux.HandleFunc("GET /auth/session", h.Session)
	mux.HandleFunc("GET /auth/logout", h.Logout)
	mux.HandleFunc("POST /auth/logout", h.Logout)
}

func registerNewsRoutes(mux *http.ServeMux, h *NewsHandlers, requireAdmin func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/news", h.ListPublished)
	mux.HandleFunc("GET /api/news/{slug}", h.GetBySlug)

	mux.Handle("GET /api/admin/news", requireAdmin(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/admin/news/{id}", requireAdmin(http.HandlerFunc(h.Get)))
	mux.Handle("POST /api/admin/news", requireAdmin(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/admin/news/{id}", requireAdmin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/admin/news/{id}", requireAdmin(http.HandlerFunc(h.Delete)))
}

func registerJobPostingRoutes(mux *http.ServeMux, h *JobPostingHandlers, requireAdmin func(http.Handler) http.Handler) {
	mux.HandleFunc("GET /api/jobs", h.ListOpen)
	mux.HandleFunc("GET /api/jobs/{slug}", h.GetBySlug)

	mux.Handle("GET /api/admin/jobs", requireAdmin(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/admin/jobs", requireAdmin(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/admin/jobs/{id}", requireAdmin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/admin/jobs/{id}", requireAdmin(http.HandlerFunc(h.Delete)))
}

func registerContactRoutes(mux *http.ServeMux, h *ContactHandlers, requireAdmin func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /api/contact", h.Submit)

	mux.Handle("GET /api/admin/contact", requireAdmin(http.HandlerFunc(h.List)))
	mux.Handle("DELETE /api/admin/contact/{id}", requireAdmin(http.HandlerFunc(h.Delete)))
}
