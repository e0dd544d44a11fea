package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medtrack/medtrack-api/internal/config"
	"github.com/medtrack/medtrack-api/internal/platform/postgres"
	"github.com/medtrack/medtrack-api/internal/service"
	"github.com/medtrack/medtrack-api/internal/service/auth"
	"github.com/medtrack/medtrack-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool

	// Stores (interfaces so tests can substitute fakes)
	userStore        store.UserStore
	drugStore        store.DrugStore
	vaccinationStore store.VaccinationStore

	// Services
	jwtService         auth.JWTService
	authService        *auth.Service
	drugService        *service.DrugService
	vaccinationService *service.VaccinationService
}

// newApplication creates a new application instance with all dependencies
// initialized. Core dependencies like configuration, logger, and the database
// pool must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		pool:   pool,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(pool, logger)
	app.drugStore = postgres.NewPostgresDrugStore(pool, logger)
	app.vaccinationStore = postgres.NewPostgresVaccinationStore(pool, logger)

	app.authService = auth.NewService(app.userStore, app.jwtService, hasher, hasher, logger)
	app.drugService = service.NewDrugService(app.drugStore, logger)
	app.vaccinationService = service.NewVaccinationService(app.vaccinationStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
	}

	app.logger.Info("Application shutdown completed")
}
