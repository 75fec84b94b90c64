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

	"github.com/SscSPs/timesheet_app/internal/adapters/notify"
	portsrepo "github.com/SscSPs/timesheet_app/internal/core/ports/repositories"
	"github.com/SscSPs/timesheet_app/internal/core/services"
	"github.com/SscSPs/timesheet_app/internal/handlers"
	"github.com/SscSPs/timesheet_app/internal/middleware"
	"github.com/SscSPs/timesheet_app/internal/platform/config"
	"github.com/SscSPs/timesheet_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/timesheet_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/timesheet_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Timesheet Backend API
// @version 1.0
// @description Time tracking, weekly timesheet submission and project budgeting.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.DBDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	serviceContainer := services.NewServiceContainer(cfg, repos, notify.NewLogNotifier())

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, repos.Health)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("driver", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
	}
}

// openStore connects the configured backend and returns its repositories with a
// matching close function.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("SQLite store opened.", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(store), func() {
			if err := store.Close(); err != nil {
				logger.Error("Error closing SQLite store", slog.String("error", err.Error()))
			}
		}, nil
	default:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}

		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}
}
