package config

import (
	"fmt"
	"strings"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses the Discord OAuth authorization-code flow.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// Fallback redirect URLs used when DISCORD_REDIRECT_URL is not set.
// The production fallback must match the redirect URI registered with Discord
// exactly, or the authorization-code exchange fails.
const (
	productionRedirectURL  = "https://www.lodestonegames.com/auth/callback"
	developmentRedirectURL = "http://localhost:8080/auth/callback"
)

// DiscordConfig contains Discord OAuth application configuration.
type DiscordConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL"`

	// GuildID is the Discord server whose members may access the admin panel.
	// When empty the callback flow denies with config_error.
	GuildID string `env:"GUILD_ID"`
}

// ResolveRedirectURL returns the OAuth redirect URL. An explicit
// DISCORD_REDIRECT_URL wins, then one derived from APP_BASE_URL, then a fixed
// production host or localhost depending on the deployment mode.
func (d DiscordConfig) ResolveRedirectURL(baseURL string, isDev bool) string {
	if d.RedirectURL != "" {
		return d.RedirectURL
	}
	if baseURL != "" {
		return strings.TrimRight(baseURL, "/") + "/auth/callback"
	}
	if isDev {
		return developmentRedirectURL
	}
	return productionRedirectURL
}

// DevAuthConfig controls the mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID   string `env:"USER_ID"  envDefault:"000000000000000001"`
	Username string `env:"USERNAME" envDefault:"dev-admin"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// Discord OAuth configuration (used when Mode=oauth).
	Discord DiscordConfig `envPrefix:"DISCORD_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// SessionSecret signs session tokens. When empty a fixed development
	// secret is used; bootstrap refuses the fallback in production.
	SessionSecret string `env:"SESSION_SECRET"`
}
