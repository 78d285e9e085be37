package devauth

// Package devauth provides a config-driven IdentityProvider for local
// development. It short-circuits the OAuth flow by pointing the browser at
// our own dev callback and answering every fetch with a fixed identity.
// Bootstrap refuses to wire it in production deployments.

import (
	"context"
	"errors"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
)

// devAccessToken is the placeholder token returned by ExchangeCode.
const devAccessToken = "dev-access-token"

// Config controls the dev identity.
type Config struct {
	UserID   string
	Username string
}

// Provider implements ports.IdentityProvider for local development.
type Provider struct {
	identity domainauth.Identity
}

// NewProvider constructs a dev identity provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.UserID == "" {
		return nil, errors.New("dev auth: UserID is required")
	}
	if cfg.Username == "" {
		return nil, errors.New("dev auth: Username is required")
	}
	return &Provider{
		identity: domainauth.Identity{
			ID:            cfg.UserID,
			Username:      cfg.Username,
			Discriminator: domainauth.DefaultDiscriminator,
		},
	}, nil
}

// AuthorizationURL sends the browser straight to the dev bypass callback.
func (p *Provider) AuthorizationURL() string {
	return "/auth/dev/callback?code=dev"
}

// ExchangeCode accepts any non-empty code and returns a placeholder token.
func (p *Provider) ExchangeCode(_ context.Context, code string) string {
	if code == "" {
		return ""
	}
	return devAccessToken
}

// FetchProfile returns the configured identity.
func (p *Provider) FetchProfile(_ context.Context, accessToken string) *domainauth.Identity {
	if accessToken == "" {
		return nil
	}
	identity := p.identity
	return &identity
}

// FetchGuilds returns no memberships; the dev callback skips the membership
// check, so there is nothing to fabricate here.
func (p *Provider) FetchGuilds(_ context.Context, _ string) []domainauth.GuildMembership {
	return []domainauth.GuildMembership{}
}

// Identity returns the configured dev identity, used by the direct-login
// route to mint a session without any callback round-trip.
func (p *Provider) Identity() domainauth.Identity {
	return p.identity
}
