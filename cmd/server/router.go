package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medtrack/medtrack-api/internal/api"
	apiMiddleware "github.com/medtrack/medtrack-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Metrics)

	authHandler := api.NewAuthHandler(app.authService, app.logger)
	drugHandler := api.NewDrugHandler(app.drugService, app.logger)
	vaccinationHandler := api.NewVaccinationHandler(app.vaccinationService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// Authentication endpoints (public, rate limited)
	r.Group(func(r chi.Router) {
		if app.config.Server.AuthRateLimitRPS > 0 {
			limiter := apiMiddleware.NewRateLimiter(
				app.config.Server.AuthRateLimitRPS,
				app.config.Server.AuthRateLimitBurst,
			)
			r.Use(limiter.Limit)
		}

		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Route("/drugs", func(r chi.Router) {
			r.Post("/", drugHandler.Create)
			r.Get("/", drugHandler.List)
			r.Get("/{id}", drugHandler.Get)
			r.Patch("/{id}", drugHandler.Update)
			r.Delete("/{id}", drugHandler.Delete)
		})

		r.Route("/vaccination", func(r chi.Router) {
			r.Post("/", vaccinationHandler.Create)
			r.Get("/", vaccinationHandler.List)
			r.Get("/{id}", vaccinationHandler.Get)
			r.Patch("/{id}", vaccinationHandler.Update)
			r.Delete("/{id}", vaccinationHandler.Delete)
		})
	})

	// Operational endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
