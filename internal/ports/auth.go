// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.
package ports

import (
	"context"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
)

// IdentityProvider talks to the external identity provider (Discord).
//
// The fetching methods fail soft: transport and provider errors are converted
// to zero values ("" / nil / empty slice) that the login flow maps to a
// denial reason.
type IdentityProvider interface {
	// AuthorizationURL builds the provider's authorization endpoint URL with
	// client id, redirect URI, response type "code", and requested scopes.
	// Pure, no I/O.
	AuthorizationURL() string

	// ExchangeCode exchanges an authorization code for an access token.
	// Returns "" on any transport or response error.
	ExchangeCode(ctx context.Context, code string) string

	// FetchProfile fetches the authenticated user's profile.
	// Returns nil on any failure.
	FetchProfile(ctx context.Context, accessToken string) *domainauth.Identity

	// FetchGuilds fetches the user's guild memberships. Returns an empty
	// slice (never nil) on failure, so membership checks fail safe.
	FetchGuilds(ctx context.Context, accessToken string) []domainauth.GuildMembership
}

// TokenCodec signs and verifies compact session tokens.
type TokenCodec interface {
	// Issue encodes the principal's token subset plus a 7-day expiry and
	// signs it with the server-held secret.
	Issue(principal domainauth.Principal) (string, error)

	// Verify fails closed: any signature mismatch, malformed payload, or
	// expiry returns nil. On success it reconstructs the principal with
	// documented defaults for fields the token does not carry.
	Verify(token string) *domainauth.Principal
}
