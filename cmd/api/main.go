package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"

	"github.com/johnquangdev/meeting-insights/internal/adapter/handler"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	analyticsuse "github.com/johnquangdev/meeting-insights/internal/usecase/analytics"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis (optional; memory cache covers the rest)
	resultCache := cache.NewResultCache(nil, cfg.Analytics.CacheTTL)
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		resultCache = cache.NewResultCache(redisClient, cfg.Analytics.CacheTTL)
	} else {
		log.Println("📦 Redis disabled, using in-memory cache")
	}

	// Initialize object storage for analytics archives (optional)
	var archive *storage.MinIOClient
	if cfg.Storage.Enabled {
		log.Println("📦 Connecting to object storage...")
		archive, err = storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		log.Printf("✅ Object storage connected: %s", cfg.Storage.Endpoint)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	analyticsRepo := repository.NewAnalyticsRepository(db)
	jobRepo := repository.NewAnalysisJobRepository(db)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize analytics service
	log.Println("📊 Initializing analytics service...")
	analyticsService := analyticsuse.NewAnalyticsService(analyticsRepo, jobRepo, resultCache, archive, cfg, logger)

	// Start background workers for queued analysis jobs
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	if err := analyticsService.StartWorkerPool(workerCtx, cfg.Analytics.WorkerCount); err != nil {
		log.Fatalf("Failed to start worker pool: %v", err)
	}

	// Initialize analytics handler
	log.Println("🚀 Initializing analytics handler...")
	analyticsController := handler.NewAnalyticsController(analyticsService, logger)
	log.Println("✅ Analytics handler initialized successfully")

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analyticsController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	if err := analyticsService.StopWorkerPool(); err != nil {
		log.Printf("Failed to stop worker pool: %v", err)
	}
	workerCancel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited")
}
