package sessiontoken

// Package sessiontoken implements the session token codec with signed JWTs.
// The token is the whole session record: nothing is stored server-side, so
// verification alone reconstructs the principal.

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
)

// TokenTTL is the session token lifetime.
const TokenTTL = 7 * 24 * time.Hour

// FallbackDevSecret signs tokens when no secret is configured. Acceptable
// only outside production; bootstrap refuses it for production deployments.
const FallbackDevSecret = "studio-site-dev-secret"

// claims is the token payload: the encoded subset of the principal plus
// registered expiry/issue times.
type claims struct {
	UserID    string `json:"id"`
	DiscordID string `json:"discordId"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with an HMAC-SHA256 secret.
type Codec struct {
	secret []byte
}

// NewCodec creates a Codec. An empty secret falls back to FallbackDevSecret.
func NewCodec(secret string) *Codec {
	if secret == "" {
		secret = FallbackDevSecret
	}
	return &Codec{secret: []byte(secret)}
}

// UsingFallbackSecret reports whether the codec signs with the development
// fallback secret.
func (c *Codec) UsingFallbackSecret() bool {
	return string(c.secret) == FallbackDevSecret
}

// Issue encodes {id, discordId, username, isAdmin} with a 7-day expiry and
// signs the result.
func (c *Codec) Issue(principal domainauth.Principal) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID:    principal.ID,
		DiscordID: principal.DiscordID,
		Username:  principal.Username,
		IsAdmin:   principal.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	})

	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify fails closed: any signature mismatch, malformed payload, or elapsed
// expiry returns nil. On success the principal is rebuilt with intentional
// leniency for fields the token does not carry: discriminator "0000", empty
// avatar, empty roles, admin flag false when absent.
func (c *Codec) Verify(token string) *domainauth.Principal {
	var cl claims
	parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil
	}

	return &domainauth.Principal{
		ID:            cl.UserID,
		DiscordID:     cl.DiscordID,
		Username:      cl.Username,
		Discriminator: domainauth.DefaultDiscriminator,
		Avatar:        "",
		Roles:         []string{},
		IsAdmin:       cl.IsAdmin,
	}
}
