package service

import (
	"context"
	"fmt"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
	"github.com/lodestone-games/studio-site/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.IdentityProvider
	Codec    ports.TokenCodec

	// GuildID is the Discord guild whose members may access the admin panel.
	GuildID string
}

// AuthService orchestrates the login flow: authorization redirect, callback
// code exchange, membership verification, and token issuance. Sessions are
// stateless; CheckSession is a pure token verification.
type AuthService struct {
	provider ports.IdentityProvider
	codec    ports.TokenCodec
	guildID  string
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		provider: opts.Provider,
		codec:    opts.Codec,
		guildID:  opts.GuildID,
	}
}

// BeginLogin returns the provider authorization URL for the login redirect.
func (s *AuthService) BeginLogin() string {
	return s.provider.AuthorizationURL()
}

// CompleteLoginInput groups the callback query parameters.
type CompleteLoginInput struct {
	Code       string
	ErrorParam string

	// SkipMembershipCheck is set by the dev bypass callback. Every
	// authenticated profile is then granted admin access.
	SkipMembershipCheck bool
}

// CompleteLoginResult contains the established session.
type CompleteLoginResult struct {
	Principal domainauth.Principal
	Token     string
}

// CompleteLogin walks the callback state machine. It returns a non-empty
// DenyReason naming the failed step instead of an error: provider failures
// have already been converted to zero values by the client, and the handler
// maps the reason onto a login-page redirect.
func (s *AuthService) CompleteLogin(ctx context.Context, in CompleteLoginInput) (*CompleteLoginResult, domainauth.DenyReason) {
	if in.ErrorParam != "" {
		return nil, domainauth.DenyOAuthDenied
	}
	if in.Code == "" {
		return nil, domainauth.DenyNoCode
	}

	accessToken := s.provider.ExchangeCode(ctx, in.Code)
	if accessToken == "" {
		return nil, domainauth.DenyTokenFailed
	}

	identity := s.provider.FetchProfile(ctx, accessToken)
	if identity == nil || identity.ID == "" {
		return nil, domainauth.DenyUserFailed
	}

	if !in.SkipMembershipCheck {
		if s.guildID == "" {
			return nil, domainauth.DenyConfigError
		}
		memberships := s.provider.FetchGuilds(ctx, accessToken)
		if !domainauth.IsGuildMember(memberships, s.guildID) {
			return nil, domainauth.DenyNotMember
		}
	}

	// Any confirmed member of the configured guild is treated as an admin
	// principal; the finer-grained permission-bit check lives in
	// domainauth.HasAdministratorAccess for consumers that need it.
	principal := domainauth.NewPrincipal(*identity, true)

	token, err := s.codec.Issue(principal)
	if err != nil {
		return nil, domainauth.DenyCallbackFailed
	}

	return &CompleteLoginResult{Principal: principal, Token: token}, domainauth.DenyNone
}

// DirectLogin mints a session for the given identity without contacting the
// provider. Used by the development direct-login route only; the HTTP layer
// refuses it in production deployments.
func (s *AuthService) DirectLogin(identity domainauth.Identity) (*CompleteLoginResult, error) {
	principal := domainauth.NewPrincipal(identity, true)
	token, err := s.codec.Issue(principal)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	return &CompleteLoginResult{Principal: principal, Token: token}, nil
}

// CheckSession verifies a session token and returns the principal, or nil
// when the token is missing, malformed, tampered with, or expired.
func (s *AuthService) CheckSession(token string) *domainauth.Principal {
	if token == "" {
		return nil
	}
	return s.codec.Verify(token)
}
