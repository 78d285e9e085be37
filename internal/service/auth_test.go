package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
	mocks "github.com/lodestone-games/studio-site/internal/mocks/auth"
)

func newAuthService(provider *mocks.MockIdentityProvider, codec *mocks.MockTokenCodec, guildID string) *AuthService {
	return NewAuthService(AuthServiceOptions{Provider: provider, Codec: codec, GuildID: guildID})
}

func TestAuthService_BeginLogin(t *testing.T) {
	svc := newAuthService(mocks.NewMockIdentityProvider(), mocks.NewMockTokenCodec(), "GUILD1")

	assert.Equal(t, "https://discord.test/oauth2/authorize?client_id=client-1", svc.BeginLogin())
}

func TestAuthService_CompleteLogin_Success(t *testing.T) {
	codec := mocks.NewMockTokenCodec()
	svc := newAuthService(mocks.NewMockIdentityProvider(), codec, "GUILD1")

	result, reason := svc.CompleteLogin(t.Context(), CompleteLoginInput{Code: "abc"})

	require.Equal(t, domainauth.DenyNone, reason)
	require.NotNil(t, result)
	assert.Equal(t, "discord-555", result.Principal.ID)
	assert.Equal(t, "gamer1", result.Principal.Username)
	assert.Equal(t, []string{"Member"}, result.Principal.Roles)
	assert.True(t, result.Principal.IsAdmin)
	assert.NotEmpty(t, result.Token)

	verified := svc.CheckSession(result.Token)
	require.NotNil(t, verified)
	assert.Equal(t, "discord-555", verified.ID)
}

func TestAuthService_CompleteLogin_Denials(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *mocks.MockIdentityProvider, c *mocks.MockTokenCodec)
		in    CompleteLoginInput
		want  domainauth.DenyReason
	}{
		{
			name: "provider error param",
			in:   CompleteLoginInput{ErrorParam: "access_denied"},
			want: domainauth.DenyOAuthDenied,
		},
		{
			name: "missing code",
			in:   CompleteLoginInput{},
			want: domainauth.DenyNoCode,
		},
		{
			name:  "exchange fails",
			setup: func(p *mocks.MockIdentityProvider, _ *mocks.MockTokenCodec) { p.AccessToken = "" },
			in:    CompleteLoginInput{Code: "abc"},
			want:  domainauth.DenyTokenFailed,
		},
		{
			name:  "profile fetch fails",
			setup: func(p *mocks.MockIdentityProvider, _ *mocks.MockTokenCodec) { p.Profile = nil },
			in:    CompleteLoginInput{Code: "abc"},
			want:  domainauth.DenyUserFailed,
		},
		{
			name: "profile missing id",
			setup: func(p *mocks.MockIdentityProvider, _ *mocks.MockTokenCodec) {
				p.Profile = &domainauth.Identity{Username: "ghost"}
			},
			in:   CompleteLoginInput{Code: "abc"},
			want: domainauth.DenyUserFailed,
		},
		{
			name: "not a member",
			setup: func(p *mocks.MockIdentityProvider, _ *mocks.MockTokenCodec) {
				p.Guilds = []domainauth.GuildMembership{}
			},
			in:   CompleteLoginInput{Code: "abc"},
			want: domainauth.DenyNotMember,
		},
		{
			name:  "token issuance fails",
			setup: func(_ *mocks.MockIdentityProvider, c *mocks.MockTokenCodec) { c.IssueErr = errors.New("boom") },
			in:    CompleteLoginInput{Code: "abc"},
			want:  domainauth.DenyCallbackFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := mocks.NewMockIdentityProvider()
			codec := mocks.NewMockTokenCodec()
			if tt.setup != nil {
				tt.setup(provider, codec)
			}
			svc := newAuthService(provider, codec, "GUILD1")

			result, reason := svc.CompleteLogin(t.Context(), tt.in)

			assert.Equal(t, tt.want, reason)
			assert.Nil(t, result)
		})
	}
}

func TestAuthService_CompleteLogin_MissingGuildConfig(t *testing.T) {
	svc := newAuthService(mocks.NewMockIdentityProvider(), mocks.NewMockTokenCodec(), "")

	result, reason := svc.CompleteLogin(t.Context(), CompleteLoginInput{Code: "abc"})

	assert.Equal(t, domainauth.DenyConfigError, reason)
	assert.Nil(t, result)
}

func TestAuthService_CompleteLogin_SkipMembershipCheck(t *testing.T) {
	provider := mocks.NewMockIdentityProvider()
	provider.Guilds = []domainauth.GuildMembership{} // would deny the normal path

	svc := newAuthService(provider, mocks.NewMockTokenCodec(), "")

	result, reason := svc.CompleteLogin(t.Context(), CompleteLoginInput{Code: "abc", SkipMembershipCheck: true})

	require.Equal(t, domainauth.DenyNone, reason)
	require.NotNil(t, result)
	assert.True(t, result.Principal.IsAdmin)
}

func TestAuthService_DirectLogin(t *testing.T) {
	svc := newAuthService(mocks.NewMockIdentityProvider(), mocks.NewMockTokenCodec(), "GUILD1")

	result, err := svc.DirectLogin(domainauth.Identity{ID: "000000000000000001", Username: "dev-admin"})

	require.NoError(t, err)
	assert.Equal(t, "discord-000000000000000001", result.Principal.ID)
	assert.True(t, result.Principal.IsAdmin)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_CheckSession(t *testing.T) {
	codec := mocks.NewMockTokenCodec()
	svc := newAuthService(mocks.NewMockIdentityProvider(), codec, "GUILD1")

	result, reason := svc.CompleteLogin(t.Context(), CompleteLoginInput{Code: "abc"})
	require.Equal(t, domainauth.DenyNone, reason)

	assert.NotNil(t, svc.CheckSession(result.Token))
	assert.Nil(t, svc.CheckSession(""))
	assert.Nil(t, svc.CheckSession("forged-token"))
}
