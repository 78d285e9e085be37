package discord

// Package discord implements the external identity client for Discord's
// OAuth2 authorization-code flow: code exchange, profile fetch, and guild
// membership fetch.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
)

// Discord API defaults. APIBaseURL is overridable for tests.
const (
	defaultAPIBaseURL = "https://discord.com/api"
	authorizePath     = "/oauth2/authorize"
	tokenPath         = "/oauth2/token"
	profilePath       = "/users/@me"
	guildsPath        = "/users/@me/guilds"
)

// ClientConfig holds configuration for the Discord client.
type ClientConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	APIBaseURL   string       // Optional, defaults to the public Discord API
	HTTPClient   *http.Client // Optional, defaults to a 30s-timeout client
	Logger       *slog.Logger // Optional
}

// Client implements the IdentityProvider port against the Discord API.
//
// All outbound calls fail soft: errors are logged and converted to zero
// values so the auth flow can map them to a denial reason instead of a 500.
type Client struct {
	config     *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Discord identity client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	base := cfg.APIBaseURL
	if base == "" {
		base = defaultAPIBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"identify", "guilds"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   base + authorizePath,
				TokenURL:  base + tokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBaseURL: base,
		httpClient: httpClient,
		log:        log,
	}, nil
}

// AuthorizationURL builds the authorization endpoint URL with client id,
// redirect URI, response_type=code, and the identify+guilds scopes.
func (c *Client) AuthorizationURL() string {
	return c.config.AuthCodeURL("")
}

// ExchangeCode performs the token-endpoint POST with client credentials and
// the authorization code. Returns "" on any transport or response error.
func (c *Client) ExchangeCode(ctx context.Context, code string) string {
	if code == "" {
		return ""
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		c.log.WarnContext(ctx, "discord code exchange failed", "error", err)
		return ""
	}
	return token.AccessToken
}

// FetchProfile performs a single authenticated GET for the user's profile.
// Returns nil on any failure.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) *domainauth.Identity {
	var identity domainauth.Identity
	if err := c.getJSON(ctx, profilePath, accessToken, &identity); err != nil {
		c.log.WarnContext(ctx, "discord profile fetch failed", "error", err)
		return nil
	}
	return &identity
}

// FetchGuilds performs a single authenticated GET for the user's guild
// memberships. Returns an empty slice (never nil) on failure or non-array
// response, so downstream membership checks fail safe.
func (c *Client) FetchGuilds(ctx context.Context, accessToken string) []domainauth.GuildMembership {
	var guilds []domainauth.GuildMembership
	if err := c.getJSON(ctx, guildsPath, accessToken, &guilds); err != nil {
		c.log.WarnContext(ctx, "discord guilds fetch failed", "error", err)
		return []domainauth.GuildMembership{}
	}
	if guilds == nil {
		return []domainauth.GuildMembership{}
	}
	return guilds
}

func (c *Client) getJSON(ctx context.Context, path, accessToken string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("discord api %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
