package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmekki/casting-api/internal/api"
)

func TestHealthGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		actors := &mockActorStore{
			countFn: func(ctx context.Context) (int64, error) { return 12, nil },
		}
		movies := &mockMovieStore{
			countFn: func(ctx context.Context) (int64, error) { return 5, nil },
		}
		handler := api.NewHealthHandler(actors, movies, nil)

		w := httptest.NewRecorder()
		handler.Get(w, httptest.NewRequest("GET", "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(12), body["actors"])
		assert.Equal(t, float64(5), body["movies"])
	})

	t.Run("Store Failure", func(t *testing.T) {
		actors := &mockActorStore{
			countFn: func(ctx context.Context) (int64, error) {
				return 0, errors.New("connection refused")
			},
		}
		handler := api.NewHealthHandler(actors, &mockMovieStore{}, nil)

		w := httptest.NewRecorder()
		handler.Get(w, httptest.NewRequest("GET", "/health", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Internal Server Error", body["message"])
	})
}
