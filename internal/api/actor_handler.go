package api

import (
	"log/slog"
	"net/http"

	"github.com/hmekki/casting-api/internal/api/shared"
	"github.com/hmekki/casting-api/internal/domain"
	"github.com/hmekki/casting-api/internal/pagination"
	"github.com/hmekki/casting-api/internal/platform/logger"
	"github.com/hmekki/casting-api/internal/store"
)

// ActorHandler handles actor-related HTTP requests.
type ActorHandler struct {
	actors store.ActorStore
	logger *slog.Logger
}

// NewActorHandler creates a new ActorHandler.
func NewActorHandler(actors store.ActorStore, logger *slog.Logger) *ActorHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ActorHandler{
		actors: actors,
		logger: logger.With(slog.String("component", "actor_handler")),
	}
}

// actorListResponse is the envelope for GET /actors. NextPage and
// NextPageURL hold false past the last page, matching the wire format
// clients already depend on.
type actorListResponse struct {
	Success     bool                 `json:"success"`
	Page        int                  `json:"page"`
	Pages       int                  `json:"pages"`
	NextPage    any                  `json:"next_page"`
	NextPageURL any                  `json:"next_page_url"`
	Actors      []domain.ActorDetail `json:"actors"`
	TotalActors int                  `json:"total_actors"`
}

type actorResponse struct {
	Success bool               `json:"success"`
	Actor   domain.ActorDetail `json:"actor"`
}

type deleteResponse struct {
	Success bool  `json:"success"`
	Delete  int64 `json:"delete"`
}

// List handles GET /actors. The listing is paginated with the fixed
// page size; the page comes from the "page" query parameter.
func (h *ActorHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	actors, err := h.actors.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	formatted := make([]domain.ActorDetail, 0, len(actors))
	for _, actor := range actors {
		formatted = append(formatted, actor.Format())
	}

	page := pagination.FromRequest(formatted, r)
	log.Debug("listing actors",
		slog.Int("total", len(actors)),
		slog.Int("page", page.Number))

	shared.RespondWithJSON(w, r, http.StatusOK, actorListResponse{
		Success:     true,
		Page:        page.Number,
		Pages:       page.Pages,
		NextPage:    falseOr(page.NextNumber()),
		NextPageURL: falseOr(page.NextURL(baseURL(r))),
		Actors:      page.Items(),
		TotalActors: len(actors),
	})
}

// Get handles GET /actors/{id}, returning the actor's long view.
func (h *ActorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
		return
	}

	actor, err := h.actors.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, actorResponse{Success: true, Actor: actor.Format()})
}

// createActorRequest uses pointer fields so that missing required
// fields are distinguishable from zero values.
type createActorRequest struct {
	Name   *string `json:"name" validate:"required"`
	Age    *int    `json:"age" validate:"required"`
	Gender *string `json:"gender" validate:"required"`
}

// Create handles POST /actors.
func (h *ActorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createActorRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Actor's data must contain name and age and gender")
		return
	}
	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Actor's data must contain name and age and gender")
		return
	}

	actor, err := domain.NewActor(*req.Name, *req.Age, domain.Gender(*req.Gender))
	if err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	if err := h.actors.Create(r.Context(), actor); err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	h.logger.Info("actor created", slog.Int64("actor_id", actor.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, actorResponse{Success: true, Actor: actor.Format()})
}

// updateActorRequest deliberately uses plain fields: absent keys and
// explicit zero values are treated the same and leave the prior value
// in place.
type updateActorRequest struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// Update handles PATCH /actors/{id}, applying a partial patch.
func (h *ActorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
		return
	}

	actor, err := h.actors.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	var req updateActorRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No data was found.")
		return
	}

	if err := actor.ApplyPatch(req.Name, req.Age, domain.Gender(req.Gender)); err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	if err := h.actors.Update(r.Context(), actor); err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, actorResponse{Success: true, Actor: actor.Format()})
}

// Delete handles DELETE /actors/{id}. Deleting an actor also detaches
// it from any movies it was cast in.
func (h *ActorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
		return
	}

	if _, err := h.actors.GetByID(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	if err := h.actors.Delete(r.Context(), id); err != nil {
		RespondWithCRUDError(w, r, err)
		return
	}

	h.logger.Info("actor deleted", slog.Int64("actor_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, deleteResponse{Success: true, Delete: id})
}

// falseOr flattens an optional value into the envelope convention:
// the value when present, JSON false when not.
func falseOr[T any](value T, ok bool) any {
	if !ok {
		return false
	}
	return value
}
