package api

import (
	"log/slog"
	"net/http"

	"github.com/hmekki/casting-api/internal/api/shared"
	"github.com/hmekki/casting-api/internal/store"
)

// HealthHandler reports service liveness together with entity counts,
// which doubles as a cheap end-to-end check of the store connection.
type HealthHandler struct {
	actors store.ActorStore
	movies store.MovieStore
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(actors store.ActorStore, movies store.MovieStore, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &HealthHandler{
		actors: actors,
		movies: movies,
		logger: logger.With(slog.String("component", "health_handler")),
	}
}

type healthResponse struct {
	Success bool  `json:"success"`
	Actors  int64 `json:"actors"`
	Movies  int64 `json:"movies"`
}

// Get handles GET /health.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	actorCount, err := h.actors.Count(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	movieCount, err := h.movies.Count(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, healthResponse{
		Success: true,
		Actors:  actorCount,
		Movies:  movieCount,
	})
}
