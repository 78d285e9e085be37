package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionCookie_Attributes(t *testing.T) {
	c := NewSessionCookie("tok-abc", SessionCookieOptions{Secure: true})

	assert.Equal(t, SessionCookieName, c.Name)
	assert.Equal(t, "tok-abc", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Empty(t, c.Domain)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, 604800, c.MaxAge)
}

func TestNewSessionCookie_InsecureForDev(t *testing.T) {
	c := NewSessionCookie("tok-abc", SessionCookieOptions{})
	assert.False(t, c.Secure)
}

func TestNewSessionCookie_Domain(t *testing.T) {
	c := NewSessionCookie("tok-abc", SessionCookieOptions{Secure: true, Domain: "lodestonegames.com"})
	assert.Equal(t, "lodestonegames.com", c.Domain)
}

func TestClearSessionCookie(t *testing.T) {
	opts := SessionCookieOptions{Secure: true, Domain: "lodestonegames.com"}
	c := ClearSessionCookie(opts)

	assert.Equal(t, SessionCookieName, c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, opts.Domain, c.Domain, "clearing cookie must match the set cookie's domain")
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Negative(t, c.MaxAge)
}

func TestSessionTokenFromRequest(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-1"})

		token, ok := SessionTokenFromRequest(r)
		require.True(t, ok)
		assert.Equal(t, "tok-1", token)
	})

	t.Run("absent", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/auth/session", nil)

		token, ok := SessionTokenFromRequest(r)
		assert.False(t, ok)
		assert.Empty(t, token)
	})

	t.Run("other cookies ignored", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		r.AddCookie(&http.Cookie{Name: "tracking", Value: "nope"})

		_, ok := SessionTokenFromRequest(r)
		assert.False(t, ok)
	})
}
