package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientConfig{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RedirectURL:  "http://localhost:8080/auth/callback",
		APIBaseURL:   srv.URL,
		HTTPClient:   srv.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient(ClientConfig{ClientSecret: "s", RedirectURL: "r"})
	assert.Error(t, err)

	_, err = NewClient(ClientConfig{ClientID: "c", RedirectURL: "r"})
	assert.Error(t, err)

	_, err = NewClient(ClientConfig{ClientID: "c", ClientSecret: "s"})
	assert.Error(t, err)
}

func TestClient_AuthorizationURL(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler())

	u, err := url.Parse(client.AuthorizationURL())
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "/oauth2/authorize", u.Path)
	assert.Equal(t, "client-1", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/auth/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "identify guilds", q.Get("scope"))
}

func TestClient_ExchangeCode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "abc", r.FormValue("code"))
		assert.Equal(t, "authorization_code", r.FormValue("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok1",
			"token_type":   "Bearer",
			"expires_in":   604800,
		})
	})
	client := newTestClient(t, mux)

	assert.Equal(t, "tok1", client.ExchangeCode(t.Context(), "abc"))
}

func TestClient_ExchangeCode_FailsSoft(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	})
	client := newTestClient(t, mux)

	assert.Empty(t, client.ExchangeCode(t.Context(), "bad-code"))
	assert.Empty(t, client.ExchangeCode(t.Context(), ""))
}

func TestClient_FetchProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/@me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "555",
			"username":      "gamer1",
			"discriminator": "0",
			"avatar":        "avatar-hash",
		})
	})
	client := newTestClient(t, mux)

	identity := client.FetchProfile(t.Context(), "tok1")
	require.NotNil(t, identity)
	assert.Equal(t, "555", identity.ID)
	assert.Equal(t, "gamer1", identity.Username)
	assert.Equal(t, "avatar-hash", identity.Avatar)
}

func TestClient_FetchProfile_FailsSoft(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/@me", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})
	client := newTestClient(t, mux)

	assert.Nil(t, client.FetchProfile(t.Context(), "stale-token"))
}

func TestClient_FetchGuilds(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/@me/guilds", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": "GUILD1", "name": "Lodestone", "permissions": "8"},
		})
	})
	client := newTestClient(t, mux)

	guilds := client.FetchGuilds(t.Context(), "tok1")
	require.Len(t, guilds, 1)
	assert.Equal(t, "GUILD1", guilds[0].ID)
	assert.Equal(t, "8", guilds[0].Permissions)
}

func TestClient_FetchGuilds_FailsSoftToEmptySlice(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /users/@me/guilds", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		client := newTestClient(t, mux)

		guilds := client.FetchGuilds(t.Context(), "tok1")
		assert.NotNil(t, guilds)
		assert.Empty(t, guilds)
	})

	t.Run("non-array response", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /users/@me/guilds", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"message":"rate limited"}`))
		})
		client := newTestClient(t, mux)

		guilds := client.FetchGuilds(t.Context(), "tok1")
		assert.NotNil(t, guilds)
		assert.Empty(t, guilds)
	})

	t.Run("null response", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /users/@me/guilds", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`null`))
		})
		client := newTestClient(t, mux)

		guilds := client.FetchGuilds(t.Context(), "tok1")
		assert.NotNil(t, guilds)
		assert.Empty(t, guilds)
	})
}
