package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
	"github.com/lodestone-games/studio-site/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.IdentityProvider = (*MockIdentityProvider)(nil)
	_ ports.TokenCodec       = (*MockTokenCodec)(nil)
)

// MockIdentityProvider simulates the Discord client with fixed responses.
// Set the fields to shape a scenario; the zero value fails every step.
type MockIdentityProvider struct {
	AuthURL     string
	AccessToken string
	Profile     *domainauth.Identity
	Guilds      []domainauth.GuildMembership

	// Optional overrides for finer control.
	ExchangeCodeFunc func(ctx context.Context, code string) string
}

// NewMockIdentityProvider creates a provider that completes the whole flow
// as a member of GUILD1 with the administrator bit set.
func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{
		AuthURL:     "https://discord.test/oauth2/authorize?client_id=client-1",
		AccessToken: "tok1",
		Profile:     &domainauth.Identity{ID: "555", Username: "gamer1"},
		Guilds:      []domainauth.GuildMembership{{ID: "GUILD1", Name: "Lodestone", Permissions: "8"}},
	}
}

func (m *MockIdentityProvider) AuthorizationURL() string { return m.AuthURL }

func (m *MockIdentityProvider) ExchangeCode(ctx context.Context, code string) string {
	if m.ExchangeCodeFunc != nil {
		return m.ExchangeCodeFunc(ctx, code)
	}
	if code == "" {
		return ""
	}
	return m.AccessToken
}

func (m *MockIdentityProvider) FetchProfile(_ context.Context, accessToken string) *domainauth.Identity {
	if accessToken == "" {
		return nil
	}
	return m.Profile
}

func (m *MockIdentityProvider) FetchGuilds(_ context.Context, _ string) []domainauth.GuildMembership {
	if m.Guilds == nil {
		return []domainauth.GuildMembership{}
	}
	return m.Guilds
}

// MockTokenCodec is a trivially reversible codec for tests that do not care
// about signatures. Issue returns "mock:" + principal id; Verify accepts
// only tokens from Principals, everything else fails closed.
type MockTokenCodec struct {
	// Principals maps issued tokens back to principals.
	Principals map[string]domainauth.Principal

	IssueErr error
}

// NewMockTokenCodec creates an empty mock codec.
func NewMockTokenCodec() *MockTokenCodec {
	return &MockTokenCodec{Principals: map[string]domainauth.Principal{}}
}

func (m *MockTokenCodec) Issue(principal domainauth.Principal) (string, error) {
	if m.IssueErr != nil {
		return "", m.IssueErr
	}
	token := "mock:" + principal.ID
	m.Principals[token] = principal
	return token, nil
}

func (m *MockTokenCodec) Verify(token string) *domainauth.Principal {
	p, ok := m.Principals[token]
	if !ok {
		return nil
	}
	return &p
}
