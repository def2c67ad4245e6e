package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/inventoryd/docs/swagger"
	"github.com/ghuser/inventoryd/pkg/app"
	"github.com/ghuser/inventoryd/pkg/cache"
	"github.com/ghuser/inventoryd/pkg/config"
	"github.com/ghuser/inventoryd/pkg/events"
	"github.com/ghuser/inventoryd/pkg/httpx"
	"github.com/ghuser/inventoryd/pkg/logger"
	"github.com/ghuser/inventoryd/pkg/telemetry"
	inventoryApi "github.com/ghuser/inventoryd/services/inventory/application/api"
	appsvcs "github.com/ghuser/inventoryd/services/inventory/application/services"
	inventoryEvents "github.com/ghuser/inventoryd/services/inventory/domain/events"
)

// @title					Inventory Registry API
// @version				1.0
// @description			Single-resource inventory registry: register items with an optional photo, then list, fetch, update or delete them.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	svcs, err := appsvcs.New(appConfig)
	if err != nil {
		log.Error("failed to initialize inventory services", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("stores initialized", "snapshot", cfg.SnapshotPath, "photos", cfg.PhotoDir)

	// Deferred photo cleanup: the queue subscriber must be live before any
	// request can orphan an asset.
	cleanupErrs, err := eventBus.Subscribe(ctx, inventoryEvents.TopicPhotoCleanup, svcs.Inventory.CleanupHandler())
	if err != nil {
		log.Error("failed to subscribe photo cleanup", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	go func() {
		for err := range cleanupErrs {
			log.Error("photo cleanup failed", "error", err)
		}
	}()

	// Restore the no-orphans-at-rest invariant after a crash between an
	// asset write and its snapshot persist.
	if removed, err := svcs.Inventory.SweepOrphans(ctx); err != nil {
		log.Warn("startup orphan sweep failed", "error", err)
	} else if removed > 0 {
		log.Info("startup orphan sweep removed assets", "count", removed)
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Redis:    redisClient,
		EventBus: eventBus,
		Items:    svcs.Items,
		Photos:   svcs.Photos,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		inventoryApi.InventoryRoutes(r, svcs, cfg.Environment == config.EnvProduction)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
