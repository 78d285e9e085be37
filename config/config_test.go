package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMode_UnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AuthMode
		wantErr bool
	}{
		{name: "oauth", input: "oauth", want: AuthModeOAuth},
		{name: "mock", input: "mock", want: AuthModeMock},
		{name: "uppercase normalized", input: "OAuth", want: AuthModeOAuth},
		{name: "invalid", input: "ldap", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mode AuthMode
			err := mode.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}

func TestDiscordConfig_ResolveRedirectURL(t *testing.T) {
	t.Run("explicit config wins", func(t *testing.T) {
		d := DiscordConfig{RedirectURL: "https://staging.example.com/auth/callback"}
		assert.Equal(t, "https://staging.example.com/auth/callback", d.ResolveRedirectURL("https://other.example.com", true))
		assert.Equal(t, "https://staging.example.com/auth/callback", d.ResolveRedirectURL("", false))
	})

	t.Run("derived from base URL", func(t *testing.T) {
		var d DiscordConfig
		assert.Equal(t,
			"https://staging.example.com/auth/callback",
			d.ResolveRedirectURL("https://staging.example.com/", false))
	})

	t.Run("development fallback", func(t *testing.T) {
		var d DiscordConfig
		assert.Equal(t, developmentRedirectURL, d.ResolveRedirectURL("", true))
	})

	t.Run("production fallback", func(t *testing.T) {
		var d DiscordConfig
		assert.Equal(t, productionRedirectURL, d.ResolveRedirectURL("", false))
	})
}

func TestAppConfig_Sanitize_DetectsDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
	assert.False(t, cfg.IsProduction())
}

func TestHTTPConfig_Sanitize_DefaultsAddr(t *testing.T) {
	var h HTTPConfig
	h.Sanitize()
	assert.Equal(t, ":8080", h.Addr)
}
