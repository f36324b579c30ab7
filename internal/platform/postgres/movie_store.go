package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/hmekki/casting-api/internal/domain"
	"github.com/hmekki/casting-api/internal/store"
)

// MovieStore implements store.MovieStore on PostgreSQL. Writes that
// touch both the movie row and its association rows run inside a
// transaction.
type MovieStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMovieStore creates a PostgreSQL implementation of the MovieStore
// interface. The connection is initialized and managed by the caller.
func NewMovieStore(db *sql.DB, logger *slog.Logger) *MovieStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MovieStore{
		db:     db,
		logger: logger.With(slog.String("component", "movie_store")),
	}
}

var _ store.MovieStore = (*MovieStore)(nil)

// List implements store.MovieStore.List.
func (s *MovieStore) List(ctx context.Context) ([]*domain.Movie, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, release_date, COALESCE(genre, ''), COALESCE(description, '')
		   FROM movie ORDER BY id`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var movies []*domain.Movie
	byID := make(map[int64]*domain.Movie)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
		byID[movie.ID] = movie
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if err := s.loadActors(ctx, byID); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetByID implements store.MovieStore.GetByID.
func (s *MovieStore) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, release_date, COALESCE(genre, ''), COALESCE(description, '')
		   FROM movie WHERE id = $1`, id)

	movie, err := scanMovie(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrMovieNotFound
		}
		return nil, err
	}

	if err := s.loadActors(ctx, map[int64]*domain.Movie{movie.ID: movie}); err != nil {
		return nil, err
	}
	return movie, nil
}

// Create implements store.MovieStore.Create. The movie row and its
// association rows are written atomically.
func (s *MovieStore) Create(ctx context.Context, movie *domain.Movie) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO movie (title, release_date, genre, description)
			 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, '')) RETURNING id`,
			movie.Title, movie.ReleaseDate, string(movie.Genre), movie.Description,
		).Scan(&movie.ID)
		if err != nil {
			return MapError(err)
		}
		return insertCast(ctx, tx, movie)
	})
	if err != nil {
		return err
	}

	s.logger.Debug("movie created", slog.Int64("movie_id", movie.ID))
	return nil
}

// Update implements store.MovieStore.Update. When replaceActors is
// true the association rows are replaced wholesale with the movie's
// current cast.
func (s *MovieStore) Update(ctx context.Context, movie *domain.Movie, replaceActors bool) error {
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE movie
			    SET title = $1, release_date = $2, genre = NULLIF($3, ''),
			        description = NULLIF($4, '')
			  WHERE id = $5`,
			movie.Title, movie.ReleaseDate, string(movie.Genre), movie.Description, movie.ID)
		if err != nil {
			return MapError(err)
		}
		if err := checkRowsAffected(result, store.ErrMovieNotFound); err != nil {
			return err
		}

		if !replaceActors {
			return nil
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM movie_actor WHERE movie_id = $1`, movie.ID); err != nil {
			return MapError(err)
		}
		return insertCast(ctx, tx, movie)
	})
}

// Delete implements store.MovieStore.Delete. Association rows go with
// the movie through ON DELETE CASCADE; actors are untouched.
func (s *MovieStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM movie WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := checkRowsAffected(result, store.ErrMovieNotFound); err != nil {
		return err
	}
	s.logger.Debug("movie deleted", slog.Int64("movie_id", id))
	return nil
}

// Count implements store.MovieStore.Count.
func (s *MovieStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM movie`).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// insertCast writes the association rows for the movie's current cast.
func insertCast(ctx context.Context, tx *sql.Tx, movie *domain.Movie) error {
	for _, actor := range movie.Actors {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO movie_actor (movie_id, actor_id) VALUES ($1, $2)`,
			movie.ID, actor.ID); err != nil {
			return MapError(err)
		}
	}
	return nil
}

// loadActors populates the cast for the given movies with a single
// association join.
func (s *MovieStore) loadActors(ctx context.Context, movies map[int64]*domain.Movie) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(movies))
	for id := range movies {
		ids = append(ids, id)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT ma.movie_id, a.id, a.name, a.age, a.gender
		   FROM movie_actor ma
		   JOIN actor a ON a.id = ma.actor_id
		  WHERE ma.movie_id = ANY($1)
		  ORDER BY a.id`, ids)
	if err != nil {
		return MapError(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var movieID int64
		actor := &domain.Actor{}
		var gender string
		if err := rows.Scan(&movieID, &actor.ID, &actor.Name, &actor.Age, &gender); err != nil {
			return MapError(err)
		}
		actor.Gender = domain.Gender(gender)
		if movie, ok := movies[movieID]; ok {
			movie.Actors = append(movie.Actors, actor)
		}
	}
	return MapError(rows.Err())
}

// scanMovie reads one movie row from a *sql.Row or *sql.Rows.
func scanMovie(row interface{ Scan(...any) error }) (*domain.Movie, error) {
	movie := &domain.Movie{}
	var genre string
	if err := row.Scan(&movie.ID, &movie.Title, &movie.ReleaseDate, &genre, &movie.Description); err != nil {
		return nil, err
	}
	movie.Genre = domain.Genre(genre)
	return movie, nil
}
