package store

import (
	"context"

	"github.com/hmekki/casting-api/internal/domain"
)

// MovieStore defines the interface for movie data persistence.
type MovieStore interface {
	// List retrieves all movies ordered by ID, each with its cast
	// populated.
	List(ctx context.Context) ([]*domain.Movie, error)

	// GetByID retrieves a movie by its ID with its cast populated.
	// Returns ErrMovieNotFound if the movie does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Movie, error)

	// Create persists a new movie together with its association rows
	// and assigns its ID. Returns ErrTitleExists if the title is taken.
	Create(ctx context.Context, movie *domain.Movie) error

	// Update persists the movie's scalar fields. When replaceActors is
	// true the association rows are replaced wholesale with the movie's
	// current cast. Returns ErrMovieNotFound if the movie does not
	// exist and ErrTitleExists on a title collision.
	Update(ctx context.Context, movie *domain.Movie, replaceActors bool) error

	// Delete removes a movie and its association rows.
	// Returns ErrMovieNotFound if the movie does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of movies.
	Count(ctx context.Context) (int64, error)
}
