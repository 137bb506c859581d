package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/adapters/documents"
	"github.com/SscSPs/orbisx_backoffice/internal/adapters/events"
	"github.com/SscSPs/orbisx_backoffice/internal/core/ports/publishers"
	"github.com/SscSPs/orbisx_backoffice/internal/core/services"
	"github.com/SscSPs/orbisx_backoffice/internal/handlers"
	"github.com/SscSPs/orbisx_backoffice/internal/middleware"
	"github.com/SscSPs/orbisx_backoffice/internal/platform/config"
	"github.com/SscSPs/orbisx_backoffice/internal/repositories/database/pgsql"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/SscSPs/orbisx_backoffice/pkg/database"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title OrbisX Back Office API
// @version 1.0
// @description Cash flow, quotes, contracts and agenda for a small studio.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey CookieAuth
// @in header
// @name Authorization
// @description Browsers send the HttpOnly session cookie set by /auth/login; other clients send "Bearer" followed by the returned token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	applied, err := database.RunMigrations(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	documentStore, err := documents.NewFileStore(cfg.DocumentStorageDir)
	if err != nil {
		logger.Error("Failed to initialize document store", slog.String("error", err.Error()), slog.String("dir", cfg.DocumentStorageDir))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	publisher := newEventPublisher(cfg, posthogClient, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing event publisher", slog.String("error", err.Error()))
		}
	}()

	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), documentStore, publisher)
	if err := serviceContainer.Auth.EnsureAdmin(ctx); err != nil {
		logger.Error("Failed to bootstrap admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// multipart parts beyond this spill to temp files
	r.MaxMultipartMemory = 8 << 20
	r.Use(
		middleware.CORS(cfg),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// newEventPublisher sends domain events to RabbitMQ when AMQP_URL is set and
// to PostHog when analytics is enabled. Without either, events are only logged.
func newEventPublisher(cfg *config.Config, posthogClient *utils.PosthogClientWrapper, logger *slog.Logger) publishers.EventPublisher {
	var targets []publishers.EventPublisher
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Warn("AMQP unavailable, domain events will not be queued", slog.String("error", err.Error()))
		} else {
			targets = append(targets, amqpPublisher)
		}
	}
	if posthogClient.IsInitialized() {
		targets = append(targets, events.NewAnalyticsPublisher(posthogClient))
	}
	if len(targets) == 0 {
		return events.NewNoopPublisher(logger)
	}
	return events.NewFanoutPublisher(targets...)
}
