package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmekki/casting-api/internal/api"
	"github.com/hmekki/casting-api/internal/domain"
	"github.com/hmekki/casting-api/internal/store"
)

// newActorRouter mounts the handler on the real route patterns so
// chi's URL parameters resolve as in production.
func newActorRouter(actors store.ActorStore) http.Handler {
	handler := api.NewActorHandler(actors, nil)

	r := chi.NewRouter()
	r.Get("/actors", handler.List)
	r.Get("/actors/{id}", handler.Get)
	r.Post("/actors", handler.Create)
	r.Patch("/actors/{id}", handler.Update)
	r.Delete("/actors/{id}", handler.Delete)
	return r
}

func mustActor(t *testing.T, id int64, name string, age int, gender domain.Gender) *domain.Actor {
	t.Helper()
	actor, err := domain.NewActor(name, age, gender)
	require.NoError(t, err)
	actor.ID = id
	return actor
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestActorList(t *testing.T) {
	actors := make([]*domain.Actor, 0, 7)
	for i := int64(1); i <= 7; i++ {
		actors = append(actors, mustActor(t, i, fmt.Sprintf("Actor%c", 'A'+rune(i-1)), 20+int(i), domain.GenderFemale))
	}

	mock := &mockActorStore{
		listFn: func(ctx context.Context) ([]*domain.Actor, error) {
			return actors, nil
		},
	}
	router := newActorRouter(mock)

	t.Run("First Page", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/actors", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(1), body["page"])
		assert.Equal(t, float64(3), body["pages"])
		assert.Equal(t, float64(2), body["next_page"])
		assert.Contains(t, body["next_page_url"], "page=2")
		assert.Equal(t, float64(7), body["total_actors"])
		assert.Len(t, body["actors"], 3)
	})

	t.Run("Last Page", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/actors?page=3", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, float64(3), body["page"])
		assert.Equal(t, false, body["next_page"])
		assert.Equal(t, false, body["next_page_url"])
		assert.Len(t, body["actors"], 1)
	})

	t.Run("Page Past The End", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/actors?page=99", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Empty(t, body["actors"])
		assert.Equal(t, float64(7), body["total_actors"])
	})

	t.Run("Store Failure", func(t *testing.T) {
		failing := &mockActorStore{
			listFn: func(ctx context.Context) ([]*domain.Actor, error) {
				return nil, fmt.Errorf("connection refused")
			},
		}
		w := httptest.NewRecorder()
		newActorRouter(failing).ServeHTTP(w, httptest.NewRequest("GET", "/actors", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestActorGet(t *testing.T) {
	jane := mustActor(t, 7, "Jane", 25, domain.GenderFemale)
	movie, err := domain.NewMovie("Heat", "15-12-1995", "Crime", "")
	require.NoError(t, err)
	movie.ID = 3
	jane.Movies = []*domain.Movie{movie}

	mock := &mockActorStore{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Actor, error) {
			if id == 7 {
				return jane, nil
			}
			return nil, store.ErrActorNotFound
		},
	}
	router := newActorRouter(mock)

	t.Run("Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/actors/7", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		actor := body["actor"].(map[string]any)
		assert.Equal(t, "Jane", actor["name"])
		assert.Equal(t, "Female", actor["gender"])
		assert.Equal(t, float64(1), actor["total_movies"])
	})

	t.Run("Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/actors/404", nil))

		require.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, float64(404), body["error"])
		assert.Equal(t, "Not found", body["message"])
	})

	t.Run("Non Numeric ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/actors/abc", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestActorCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mock := &mockActorStore{
			createFn: func(ctx context.Context, actor *domain.Actor) error {
				actor.ID = 1
				return nil
			},
		}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/actors",
			strings.NewReader(`{"name": "Jane", "age": 25, "gender": "F"}`))
		newActorRouter(mock).ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		actor := body["actor"].(map[string]any)
		assert.Equal(t, "Jane", actor["name"])
		assert.Equal(t, float64(1), actor["id"])
	})

	t.Run("Missing Required Field", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/actors", strings.NewReader(`{"name": "Jane"}`))
		newActorRouter(&mockActorStore{}).ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Actor's data must contain name and age and gender", body["message"])
	})

	t.Run("Non Integer Age", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/actors",
			strings.NewReader(`{"name": "Jane", "age": "old", "gender": "F"}`))
		newActorRouter(&mockActorStore{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/actors",
			strings.NewReader(`{"name": "J4ne", "age": 25, "gender": "F"}`))
		newActorRouter(&mockActorStore{}).ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Contains(t, body["message"], "ERROR: Name must contain only alphabetic characters")
	})
}

func TestActorUpdate(t *testing.T) {
	newMock := func(jane *domain.Actor) *mockActorStore {
		return &mockActorStore{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Actor, error) {
				if id == jane.ID {
					return jane, nil
				}
				return nil, store.ErrActorNotFound
			},
			updateFn: func(ctx context.Context, actor *domain.Actor) error {
				return nil
			},
		}
	}

	t.Run("Partial Patch", func(t *testing.T) {
		jane := mustActor(t, 7, "Jane", 25, domain.GenderFemale)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/actors/7", strings.NewReader(`{"age": 26}`))
		newActorRouter(newMock(jane)).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		actor := body["actor"].(map[string]any)
		assert.Equal(t, "Jane", actor["name"])
		assert.Equal(t, float64(26), actor["age"])
	})

	t.Run("Empty String Does Not Clear", func(t *testing.T) {
		jane := mustActor(t, 7, "Jane", 25, domain.GenderFemale)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/actors/7", strings.NewReader(`{"name": ""}`))
		newActorRouter(newMock(jane)).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		actor := body["actor"].(map[string]any)
		assert.Equal(t, "Jane", actor["name"])
	})

	t.Run("Unknown Actor", func(t *testing.T) {
		jane := mustActor(t, 7, "Jane", 25, domain.GenderFemale)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/actors/404", strings.NewReader(`{"age": 26}`))
		newActorRouter(newMock(jane)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Missing Body", func(t *testing.T) {
		jane := mustActor(t, 7, "Jane", 25, domain.GenderFemale)
		w := httptest.NewRecorder()
		req := httptest.NewRequest("PATCH", "/actors/7", strings.NewReader(""))
		newActorRouter(newMock(jane)).ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "No data was found.", body["message"])
	})
}

func TestActorDelete(t *testing.T) {
	jane := mustActor(t, 7, "Jane", 25, domain.GenderFemale)
	mock := &mockActorStore{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Actor, error) {
			if id == 7 {
				return jane, nil
			}
			return nil, store.ErrActorNotFound
		},
		deleteFn: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	router := newActorRouter(mock)

	t.Run("Success", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/actors/7", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(7), body["delete"])
	})

	t.Run("Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("DELETE", "/actors/404", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
