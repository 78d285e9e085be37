package bootstrap

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lodestone-games/studio-site/config"
	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
	"github.com/lodestone-games/studio-site/internal/service"
)

func baseConfig(isDev bool) *config.AppConfig {
	return &config.AppConfig{
		IsDev: isDev,
		Auth: config.AuthConfig{
			Mode: config.AuthModeOAuth,
			Discord: config.DiscordConfig{
				ClientID:     "client-1",
				ClientSecret: "secret-1",
				GuildID:      "GUILD1",
			},
			DevAuth:       config.DevAuthConfig{UserID: "000000000000000001", Username: "dev-admin"},
			SessionSecret: "test-signing-secret",
		},
	}
}

func TestBuildAuthStack_OAuth(t *testing.T) {
	stack, err := BuildAuthStack(baseConfig(false), nil)
	require.NoError(t, err)
	require.NotNil(t, stack.Service)
	assert.False(t, stack.AllowDevAuth)
}

func TestBuildAuthStack_DevEnablesDevAuth(t *testing.T) {
	stack, err := BuildAuthStack(baseConfig(true), nil)
	require.NoError(t, err)
	assert.True(t, stack.AllowDevAuth)
	assert.Equal(t, "000000000000000001", stack.DevIdentity.ID)
}

func TestBuildAuthStack_DerivesRedirectFromBaseURL(t *testing.T) {
	cfg := baseConfig(false)
	cfg.HTTP.BaseURL = "https://staging.lodestonegames.com"

	stack, err := BuildAuthStack(cfg, nil)
	require.NoError(t, err)
	assert.Contains(t, stack.Service.BeginLogin(),
		url.QueryEscape("https://staging.lodestonegames.com/auth/callback"))
}

func TestBuildAuthStack_RefusesFallbackSecretInProduction(t *testing.T) {
	cfg := baseConfig(false)
	cfg.Auth.SessionSecret = ""

	_, err := BuildAuthStack(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestBuildAuthStack_AllowsFallbackSecretInDev(t *testing.T) {
	cfg := baseConfig(true)
	cfg.Auth.SessionSecret = ""

	_, err := BuildAuthStack(cfg, nil)
	require.NoError(t, err)
}

func TestBuildAuthStack_RefusesMockInProduction(t *testing.T) {
	cfg := baseConfig(false)
	cfg.Auth.Mode = config.AuthModeMock

	_, err := BuildAuthStack(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mock")
}

func TestBuildAuthStack_MockInDev(t *testing.T) {
	cfg := baseConfig(true)
	cfg.Auth.Mode = config.AuthModeMock

	stack, err := BuildAuthStack(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "dev-admin", stack.DevIdentity.Username)

	// The mock provider completes the flow without contacting Discord.
	result, reason := stack.Service.CompleteLogin(t.Context(), service.CompleteLoginInput{
		Code:                "dev",
		SkipMembershipCheck: true,
	})
	require.Equal(t, domainauth.DenyNone, reason)
	assert.Equal(t, "discord-000000000000000001", result.Principal.ID)
	assert.True(t, result.Principal.IsAdmin)
}
