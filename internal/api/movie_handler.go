package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hmekki/casting-api/internal/api/shared"
	"github.com/hmekki/casting-api/internal/domain"
	"github.com/hmekki/casting-api/internal/pagination"
	"github.com/hmekki/casting-api/internal/platform/logger"
	"github.com/hmekki/casting-api/internal/store"
)

// MovieHandler handles movie-related HTTP requests. It holds the actor
// store as well, to resolve cast member IDs sent with movie writes.
type MovieHandler struct {
	movies store.MovieStore
	actors store.ActorStore
	logger *slog.Logger
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(movies store.MovieStore, actors store.ActorStore, logger *slog.Logger) *MovieHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &MovieHandler{
		movies: movies,
		actors: actors,
		logger: logger.With(slog.String("component", "movie_handler")),
	}
}

type movieListResponse struct {
	Success     bool                 `json:"success"`
	Page        int                  `json:"page"`
	Pages       int                  `json:"pages"`
	NextPage    any                  `json:"next_page"`
	NextPageURL any                  `json:"next_page_url"`
	Movies      []domain.MovieDetail `json:"movies"`
	TotalMovies int                  `json:"total_movies"`
}

type movieResponse struct {
	Success bool               `json:"success"`
	Movie   domain.MovieDetail `json:"movie"`
}

// List handles GET /movies.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	movies, err := h.movies.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	formatted := make([]domain.MovieDetail, 0, len(movies))
	for _, movie := range movies {
		formatted = append(formatted, movie.Format())
	}

	page := pagination.FromRequest(formatted, r)
	log.Debug("listing movies",
		slog.Int("total", len(movies)),
		slog.Int("page", page.Number))

	shared.RespondWithJSON(w, r, http.StatusOK, movieListResponse{
		Success:     true,
		Page:        page.Number,
		Pages:       page.Pages,
		NextPage:    falseOr(page.NextNumber()),
		NextPageURL: falseOr(page.NextURL(baseURL(r))),
		Movies:      page.Items(),
		TotalMovies: len(movies),
	})
}

// Get handles GET /movies/{id}, returning the movie's long view.
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
		return
	}

	movie, err := h.movies.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, movieResponse{Success: true, Movie: movie.Format()})
}

// createMovieRequest uses pointer fields for the required title and
// release date; genre, description and actors are optional.
type createMovieRequest struct {
	Title       *string `json:"title" validate:"required"`
	ReleaseDate *string `json:"release_date" validate:"required"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Actors      *[]any  `json:"actors"`
}

// Create handles POST /movies.
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMovieRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Movie's data must contain a title and release_date")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Movie's data must contain a title and release_date")
		return
	}

	movie, err := domain.NewMovie(*req.Title, *req.ReleaseDate, domain.Genre(req.Genre), req.Description)
	if err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	if req.Actors != nil {
		actors, err := h.resolveActors(r, *req.Actors)
		if err != nil {
			respondRequestError(w, r, err)
			return
		}
		movie.Actors = actors
	}

	if err := h.movies.Create(r.Context(), movie); err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	h.logger.Info("movie created",
		slog.Int64("movie_id", movie.ID),
		slog.String("title", movie.Title))
	shared.RespondWithJSON(w, r, http.StatusCreated, movieResponse{Success: true, Movie: movie.Format()})
}

// updateMovieRequest mirrors the partial-patch semantics: absent keys
// and explicit zero values both leave the prior value in place. Actors
// is a pointer so that its presence replaces the cast wholesale.
type updateMovieRequest struct {
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	Actors      *[]any `json:"actors"`
}

// Update handles PATCH /movies/{id}.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
		return
	}

	movie, err := h.movies.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	var req updateMovieRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No data provided")
		return
	}

	patch := domain.MoviePatch{
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
		Genre:       domain.Genre(req.Genre),
		Description: req.Description,
	}
	if req.Actors != nil {
		actors, err := h.resolveActors(r, *req.Actors)
		if err != nil {
			respondRequestError(w, r, err)
			return
		}
		patch.Actors = actors
		patch.ActorsSet = true
	}

	if err := movie.ApplyPatch(patch); err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	if err := h.movies.Update(r.Context(), movie, patch.ActorsSet); err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, movieResponse{Success: true, Movie: movie.Format()})
}

// Delete handles DELETE /movies/{id}. Association rows go with the
// movie; the actors themselves are untouched.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
		return
	}

	if _, err := h.movies.GetByID(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	if err := h.movies.Delete(r.Context(), id); err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	h.logger.Info("movie deleted", slog.Int64("movie_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, deleteResponse{Success: true, Delete: id})
}

// resolveActors turns a list of actor IDs (numbers or numeric strings)
// into actor records. Duplicate IDs are collapsed. A malformed list is
// a 400; an unknown actor is a 404.
func (h *MovieHandler) resolveActors(r *http.Request, raw []any) ([]*domain.Actor, error) {
	seen := make(map[int64]bool, len(raw))
	ids := make([]int64, 0, len(raw))

	for _, item := range raw {
		id, err := actorIDFromJSON(item)
		if err != nil {
			return nil, &requestError{
				Status:  http.StatusBadRequest,
				Message: "Invalid actor id, should be int",
			}
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	actors := make([]*domain.Actor, 0, len(ids))
	for _, id := range ids {
		actor, err := h.actors.GetByID(r.Context(), id)
		if err != nil {
			if store.IsNotFoundError(err) {
				return nil, &requestError{Status: http.StatusNotFound, Message: "Not found"}
			}
			return nil, err
		}
		actors = append(actors, actor)
	}

	return actors, nil
}

// actorIDFromJSON converts a decoded JSON list element to an actor ID.
// JSON numbers arrive as float64 and must be integral; strings must
// parse as integers.
func actorIDFromJSON(item any) (int64, error) {
	switch value := item.(type) {
	case float64:
		id := int64(value)
		if float64(id) != value {
			return 0, errors.New("actor id is not an integer")
		}
		return id, nil
	case string:
		return strconv.ParseInt(value, 10, 64)
	default:
		return 0, errors.New("actor id is not an integer")
	}
}

// respondRequestError writes a requestError's status and message, and
// falls back to the CRUD error mapper for anything else.
func respondRequestError(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		shared.RespondWithError(w, r, reqErr.Status, reqErr.Message)
		return
	}
	RespondWithCRUDError(w, r, err)
}
