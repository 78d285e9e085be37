package bootstrap

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lodestone-games/studio-site/config"
	httpx "github.com/lodestone-games/studio-site/internal/http"
)

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		News:          cfg.Services.News,
		Jobs:          cfg.Services.Jobs,
		Contact:       cfg.Services.Contact,
		SecureCookies: appCfg.IsProduction(),
		CookieDomain:  appCfg.HTTP.CookieDomain,
		Logger:        logger,
	}
	if cfg.Services.Auth != nil {
		services.Auth = cfg.Services.Auth.Service
		services.AllowDevAuth = cfg.Services.Auth.AllowDevAuth
		services.DevIdentity = cfg.Services.Auth.DevIdentity
	}

	// Order: Recover -> Logging -> Router
	handler := httpx.NewRouter(services)
	handler = httpx.Logging(logger)(handler)
	handler = httpx.Recover(logger)(handler)

	return startServer(logger, handler, appCfg.HTTP.Addr)
}

func startServer(logger *slog.Logger, handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}
