package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the public base URL of the deployment
	// (e.g., "https://www.lodestonegames.com"). When set and no explicit
	// DISCORD_REDIRECT_URL is configured, the OAuth callback URL is derived
	// from it. Leave empty to use the fixed per-mode fallbacks.
	BaseURL string `env:"APP_BASE_URL"`

	// CookieDomain is the Domain attribute for session cookies.
	// Leave empty to scope cookies to the request host.
	CookieDomain string `env:"APP_COOKIE_DOMAIN"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.Addr == "" {
		h.Addr = ":8080"
	}
}
