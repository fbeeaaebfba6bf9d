package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/J0SEF4/HackathonSaludIA/internal/adapters/cache"
	"github.com/J0SEF4/HackathonSaludIA/internal/adapters/database"
	"github.com/J0SEF4/HackathonSaludIA/internal/adapters/dataset"
	"github.com/J0SEF4/HackathonSaludIA/internal/api/handlers"
	"github.com/J0SEF4/HackathonSaludIA/internal/api/middleware"
	"github.com/J0SEF4/HackathonSaludIA/internal/api/routes"
	"github.com/J0SEF4/HackathonSaludIA/internal/application/services"
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/providers"
	"github.com/J0SEF4/HackathonSaludIA/internal/domain/repositories"
	"github.com/J0SEF4/HackathonSaludIA/internal/infrastructure/clients/postgres"
	"github.com/J0SEF4/HackathonSaludIA/internal/infrastructure/clients/redis"
	"github.com/J0SEF4/HackathonSaludIA/internal/infrastructure/observability"
	"github.com/J0SEF4/HackathonSaludIA/pkg/config"
	"github.com/J0SEF4/HackathonSaludIA/pkg/secrets"
)

func main() {

	// Pull credentials from Vault into the environment before config reads it
	vaultResult, vaultErr := secrets.Apply(context.Background(), secrets.FromEnv())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)
	logger := observability.GetLogger()

	if vaultErr != nil {
		logger.Warn().Err(vaultErr).Msg("failed to load secrets from Vault")
	} else if vaultResult.Enabled {
		logger.Info().
			Str("path", vaultResult.Path).
			Int("loaded", vaultResult.Loaded).
			Int("skipped", vaultResult.Skipped).
			Msg("secrets loaded from Vault")
	}

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Select the dataset source
	var patientRepo repositories.PatientRepository
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		patientRepo = database.NewPatientAdapter(pgClient)
		logger.Info().Msg("patient dataset backed by PostgreSQL")
	default:
		patientRepo = dataset.NewCSVAdapter(cfg.Dataset.CSVPath)
		logger.Info().Str("path", cfg.Dataset.CSVPath).Msg("patient dataset backed by CSV file")
	}

	// Initialize Redis client (optional, enables response caching)
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, response caching disabled")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		logger.Info().Msg("Redis client initialized")
	}

	// Initialize services
	monitoringService := services.NewMonitoringService(patientRepo)
	monitoringService.SetMetrics(metrics)

	// Initialize handlers
	priorityHandler := handlers.NewPriorityHandler(monitoringService)
	lostHandler := handlers.NewLostHandler(monitoringService)
	auditHandler := handlers.NewAuditHandler(monitoringService)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
		logger.Info().Msg("cache middleware initialized")
	}

	// Set up router
	router := routes.NewRouter(
		priorityHandler,
		lostHandler,
		auditHandler,
		cacheMiddleware,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
