package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/lodestone-games/studio-site/config"
	"github.com/lodestone-games/studio-site/internal/data"
	"github.com/lodestone-games/studio-site/internal/service"
)

// ServiceDeps groups the shared infrastructure handed to NewServices.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// ServiceContainer holds the constructed application services.
type ServiceContainer struct {
	Auth    *AuthStack
	News    *service.NewsService
	Jobs    *service.JobPostingService
	Contact *service.ContactService
}

// NewServices constructs the application services from shared infrastructure.
func NewServices(deps *ServiceDeps, auth *AuthStack) ServiceContainer {
	newsRepo := data.NewNewsRepo(deps.DB)
	jobsRepo := data.NewJobPostingRepo(deps.DB)
	contactRepo := data.NewContactRepo(deps.DB)

	var cache *data.RedisCacheRepo
	if deps.RedisClient != nil {
		cache = data.NewRedisCacheRepo(deps.RedisClient)
	}

	newsOpts := service.NewsServiceOptions{
		NewsRepo: newsRepo,
		CacheTTL: deps.Config.Cache.NewsTTL,
		Logger:   deps.Logger,
	}
	if cache != nil {
		newsOpts.Cache = cache
	}

	return ServiceContainer{
		Auth:    auth,
		News:    service.NewNewsService(newsOpts),
		Jobs:    service.NewJobPostingService(service.JobPostingServiceOptions{JobRepo: jobsRepo}),
		Contact: service.NewContactService(service.ContactServiceOptions{ContactRepo: contactRepo, Logger: deps.Logger}),
	}
}

// ServiceOrchestrationConfig groups dependencies for RunServicesWithShutdown.
type ServiceOrchestrationConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunServicesWithShutdown starts the HTTP server and blocks until SIGINT or
// SIGTERM, then drains it gracefully.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()

		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("HTTP server stopped")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
