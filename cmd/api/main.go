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

	_ "github.com/ghuser/skulabel/docs/swagger"
	"github.com/ghuser/skulabel/pkg/app"
	"github.com/ghuser/skulabel/pkg/cache"
	"github.com/ghuser/skulabel/pkg/config"
	"github.com/ghuser/skulabel/pkg/events"
	"github.com/ghuser/skulabel/pkg/httpx"
	"github.com/ghuser/skulabel/pkg/logger"
	"github.com/ghuser/skulabel/pkg/session"
	"github.com/ghuser/skulabel/pkg/telemetry"
	labelApi "github.com/ghuser/skulabel/services/label/application/api"
	labelSubscribers "github.com/ghuser/skulabel/services/label/application/subscribers"
	"github.com/ghuser/skulabel/services/label/infrastructure/printer"
)

// @title					SKU Label API
// @version				1.0
// @description			Generates SKUs and composes printable barcode / QR product labels.
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
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
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

	sessionStore := session.NewRedisStore(
		redisClient.Client(),
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.Environment == config.EnvProduction,
		session.DefaultMaxAge,
	)
	log.Info("session store initialized", "backend", "redis")

	appConfig := &app.Application{
		Config:       cfg,
		Logger:       log,
		EventBus:     eventBus,
		Redis:        redisClient,
		SessionStore: sessionStore,
	}

	var printerCheck httpx.HealthChecker
	if cfg.PrintEnabled {
		pdf := printer.NewPDFPrinter(cfg.ChromeBin, log)
		defer pdf.Close() //nolint:errcheck
		appConfig.Printer = pdf
		printerCheck = pdf
		log.Info("pdf printing enabled", "chrome_bin", cfg.ChromeBin)
	}

	if err := labelSubscribers.Register(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
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
		telemetry.HTTPMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Redis:    redisClient,
		EventBus: eventBus,
		Printer:  printerCheck,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var routeErr error
	r.Route("/api", func(r chi.Router) {
		routeErr = registerRoutes(r, appConfig)
	})
	if routeErr != nil {
		log.Error("failed to register routes", "error", routeErr)
		os.Exit(1) //nolint:gocritic
	}

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
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) error {
	return labelApi.LabelRoutes(r, a)
}
