package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/currex/currex_backend/internal/adapters/database/memory"
	"github.com/currex/currex_backend/internal/adapters/database/pgsql"
	"github.com/currex/currex_backend/internal/core/ports"
	"github.com/currex/currex_backend/internal/core/services"
	"github.com/currex/currex_backend/internal/dto"
	"github.com/currex/currex_backend/internal/handlers"
	"github.com/currex/currex_backend/internal/middleware"
	"github.com/currex/currex_backend/internal/platform/config"
	"github.com/currex/currex_backend/pkg/database"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Currex Backend API
// @version 1.0
// @description Multi-currency wallet and exchange demo backend.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup := selectStorage(context.Background(), cfg, logger)
	defer cleanup()

	serviceContainer := services.NewServiceContainer(repos, cfg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSOrigins),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, repos.Health)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("storage", repos.Health.Name()),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// selectStorage picks the repository provider for this process: Postgres when
// reachable, the in-memory store when requested or when every connection
// attempt fails. The returned cleanup releases whatever the choice acquired.
func selectStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ports.RepositoryProvider, func()) {
	if cfg.UseMemoryStore {
		logger.Info("Using in-memory storage (USE_MEMORY_STORE set)")
		return memory.NewStore().Provider(), func() {}
	}

	manager := database.NewManager(cfg.DatabaseURL, database.RetryPolicy{
		MaxAttempts: cfg.DBMaxRetries,
		BaseDelay:   cfg.DBRetryBaseDelay,
		MaxDelay:    cfg.DBRetryMaxDelay,
	}, logger)

	if err := manager.Start(ctx); err != nil {
		logger.Warn("Database unreachable, falling back to in-memory storage",
			slog.String("error", err.Error()))
		return memory.NewStore().Provider(), func() {}
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		manager.Stop()
		os.Exit(1)
	}

	return pgsql.NewRepositoryProvider(manager.Pool(), manager), manager.Stop
}

// runMigrations applies all pending "up" migrations from the migrations
// directory over a temporary database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
