package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lodestone-games/studio-site/config"
	"github.com/lodestone-games/studio-site/internal/adapters/devauth"
	"github.com/lodestone-games/studio-site/internal/adapters/discord"
	"github.com/lodestone-games/studio-site/internal/adapters/sessiontoken"
	domainauth "github.com/lodestone-games/studio-site/internal/domain/auth"
	"github.com/lodestone-games/studio-site/internal/ports"
	"github.com/lodestone-games/studio-site/internal/service"
)

// AuthStack bundles the auth service with the pieces the HTTP layer needs.
type AuthStack struct {
	Service *service.AuthService

	// DevIdentity is the identity minted by the direct-login route. Zero
	// value outside development.
	DevIdentity domainauth.Identity

	// AllowDevAuth reports whether dev bypass routes may be registered.
	AllowDevAuth bool
}

// BuildAuthStack wires the token codec, identity provider, and auth service
// from configuration. It is the single place where the mock provider and the
// fallback signing secret are refused for production deployments.
func BuildAuthStack(cfg *config.AppConfig, logger *slog.Logger) (*AuthStack, error) {
	if cfg == nil {
		return nil, errors.New("app config is required")
	}

	codec := sessiontoken.NewCodec(cfg.Auth.SessionSecret)
	if cfg.IsProduction() && codec.UsingFallbackSecret() {
		return nil, errors.New("SESSION_SECRET must be set in production")
	}
	if codec.UsingFallbackSecret() && logger != nil {
		logger.Warn("using fallback development session secret")
	}

	provider, devIdentity, err := buildIdentityProvider(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &AuthStack{
		Service: service.NewAuthService(service.AuthServiceOptions{
			Provider: provider,
			Codec:    codec,
			GuildID:  cfg.Auth.Discord.GuildID,
		}),
		DevIdentity:  devIdentity,
		AllowDevAuth: cfg.IsDev,
	}, nil
}

//nolint:ireturn // the provider is selected by AuthMode at runtime.
func buildIdentityProvider(
	cfg *config.AppConfig,
	logger *slog.Logger,
) (ports.IdentityProvider, domainauth.Identity, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		if cfg.IsProduction() {
			return nil, domainauth.Identity{}, errors.New("AUTH_MODE=mock is not allowed in production")
		}
		provider, err := devauth.NewProvider(devauth.Config{
			UserID:   cfg.Auth.DevAuth.UserID,
			Username: cfg.Auth.DevAuth.Username,
		})
		if err != nil {
			return nil, domainauth.Identity{}, fmt.Errorf("build dev auth provider: %w", err)
		}
		return provider, provider.Identity(), nil

	case config.AuthModeOAuth:
		client, err := discord.NewClient(discord.ClientConfig{
			ClientID:     cfg.Auth.Discord.ClientID,
			ClientSecret: cfg.Auth.Discord.ClientSecret,
			RedirectURL:  cfg.Auth.Discord.ResolveRedirectURL(cfg.HTTP.BaseURL, cfg.IsDev),
			Logger:       logger,
		})
		if err != nil {
			return nil, domainauth.Identity{}, fmt.Errorf("build discord client: %w", err)
		}
		// Dev deployments with OAuth still get a direct-login identity so
		// the admin panel is reachable without a Discord application.
		devIdentity := domainauth.Identity{
			ID:       cfg.Auth.DevAuth.UserID,
			Username: cfg.Auth.DevAuth.Username,
		}
		return client, devIdentity, nil

	default:
		return nil, domainauth.Identity{}, fmt.Errorf("unknown auth mode %q", cfg.Auth.Mode)
	}
}
