package httpx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
	mockauth "github.com/lodestone-games/studio-site/internal/mocks/auth"
	"github.com/lodestone-games/studio-site/internal/service"
)

func testAuthService(t *testing.T) (*service.AuthService, *mockauth.MockTokenCodec) {
	t.Helper()
	codec := mockauth.NewMockTokenCodec()
	svc := service.NewAuthService(service.AuthServiceOptions{
		Provider: mockauth.NewMockIdentityProvider(),
		Codec:    codec,
		GuildID:  "GUILD1",
	})
	return svc, codec
}

func issueTestToken(t *testing.T, codec *mockauth.MockTokenCodec, isAdmin bool) string {
	t.Helper()
	token, err := codec.Issue(domainauth.Principal{
		ID:        "discord-555",
		DiscordID: "555",
		Username:  "gamer1",
		IsAdmin:   isAdmin,
	})
	require.NoError(t, err)
	return token
}

func TestRequireAdmin(t *testing.T) {
	svc, codec := testAuthService(t)

	var seen *domainauth.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin(svc)(next)

	t.Run("no cookie yields 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/news", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forged token yields 403", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/admin/news", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "mock:forged"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-admin principal yields 403", func(t *testing.T) {
		token := issueTestToken(t, codec, false)
		r := httptest.NewRequest(http.MethodGet, "/api/admin/news", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin principal passes with context", func(t *testing.T) {
		token := issueTestToken(t, codec, true)
		r := httptest.NewRequest(http.MethodGet, "/api/admin/news", nil)
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "discord-555", seen.ID)
		assert.True(t, seen.IsAdmin)
	})
}

func TestRecover_PanicYields500(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	handler := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogging_PreservesStatus(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
