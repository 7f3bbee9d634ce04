package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/octobees/vacation-recommendations/web/internal/backend"
	"github.com/octobees/vacation-recommendations/web/internal/config"
	"github.com/octobees/vacation-recommendations/web/internal/entity"
	"github.com/octobees/vacation-recommendations/web/internal/handler"
	middlewarepkg "github.com/octobees/vacation-recommendations/web/internal/middleware"
	"github.com/octobees/vacation-recommendations/web/internal/router"
	"github.com/octobees/vacation-recommendations/web/internal/service"
	"github.com/octobees/vacation-recommendations/web/internal/session"
	"github.com/octobees/vacation-recommendations/web/internal/view"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := setupLogger(cfg.LogLevel, cfg.Env)
	defer func() {
		_ = logger.Sync()
	}()

	backendClient := backend.NewClient(newBackendHTTPClient(cfg, logger), cfg.BackendBaseURL)

	cities := entity.NewCityList(cfg.KnownCities)
	store := session.NewStore(cfg.SessionTTL, func() *service.FormController {
		return service.NewFormController(backendClient, cities, logger.Named("controller"))
	})
	tokens := session.NewTokenManager(cfg.SessionSecret, cfg.SessionTTL)
	contact := service.NewContactInfo(cfg.ContactEmail, cfg.ContactPhone, cfg.PhoneRegion)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal("failed to load templates", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger.Named("http")))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Sessions{Tokens: tokens, Store: store}, router.Handlers{
		Form: handler.NewFormHandler(contact),
		API:  handler.NewAPIHandler(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, store, cfg.SessionTTL, logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	logger.Info("web starting",
		zap.String("port", cfg.Port),
		zap.String("backend", cfg.BackendBaseURL),
		zap.Int("cities", len(cities.Names())),
	)

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newBackendHTTPClient honours BACKEND_TIMEOUT for both the ID-token and the
// plain client.
func newBackendHTTPClient(cfg *config.Config, logger *zap.Logger) *http.Client {
	if !cfg.BackendIDToken {
		return backend.NewHTTPClient(cfg.BackendTimeout)
	}

	// The token source keeps this context for refreshes, so it must outlive the call.
	client, err := backend.NewIDTokenClient(context.Background(), cfg.BackendBaseURL, cfg.BackendTimeout)
	if err != nil {
		logger.Warn("id token client unavailable, backend calls are unauthenticated",
			zap.Error(err),
			zap.String("backend", cfg.BackendBaseURL),
		)
		return backend.NewHTTPClient(cfg.BackendTimeout)
	}
	return client
}

// sweepSessions drops idle sessions until ctx is cancelled.
func sweepSessions(ctx context.Context, store *session.Store, ttl time.Duration, logger *zap.Logger) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				logger.Debug("expired sessions removed", zap.Int("count", n), zap.Int("active", store.Len()))
			}
		}
	}
}
