package main

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hmekki/casting-api/internal/api"
	apiMiddleware "github.com/hmekki/casting-api/internal/api/middleware"
	"github.com/hmekki/casting-api/internal/config"
	"github.com/hmekki/casting-api/internal/platform/postgres"
	"github.com/hmekki/casting-api/internal/service/auth"
	"github.com/hmekki/casting-api/internal/store"
)

// application holds the process-wide dependencies, created once at
// startup and shared by all requests.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB
	actors   store.ActorStore
	movies   store.MovieStore
	verifier auth.TokenVerifier
}

// newApplication wires the application's components from the loaded
// configuration and established database connection.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) *application {
	return &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		actors:   postgres.NewActorStore(db, logger),
		movies:   postgres.NewMovieStore(db, logger),
		verifier: auth.NewJWKSVerifier(cfg.Auth),
	}
}

// setupRouter configures the application router with all routes and
// middleware. Reads are open; every write is gated behind its
// resource-and-verb permission.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.verifier, app.logger)
	actorHandler := api.NewActorHandler(app.actors, app.logger)
	movieHandler := api.NewMovieHandler(app.movies, app.actors, app.logger)
	healthHandler := api.NewHealthHandler(app.actors, app.movies, app.logger)

	r.Route("/actors", func(r chi.Router) {
		r.Get("/", actorHandler.List)
		r.Get("/{id}", actorHandler.Get)
		r.With(authMiddleware.RequirePermission("create:actor")).Post("/", actorHandler.Create)
		r.With(authMiddleware.RequirePermission("patch:actor")).Patch("/{id}", actorHandler.Update)
		r.With(authMiddleware.RequirePermission("delete:actor")).Delete("/{id}", actorHandler.Delete)
	})

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", movieHandler.List)
		r.Get("/{id}", movieHandler.Get)
		r.With(authMiddleware.RequirePermission("create:movie")).Post("/", movieHandler.Create)
		r.With(authMiddleware.RequirePermission("patch:movie")).Patch("/{id}", movieHandler.Update)
		r.With(authMiddleware.RequirePermission("delete:movie")).Delete("/{id}", movieHandler.Delete)
	})

	r.Get("/health", healthHandler.Get)

	return r
}

// cleanup releases process-wide resources at shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
