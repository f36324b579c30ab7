package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/hmekki/casting-api/internal/domain"
	"github.com/hmekki/casting-api/internal/store"
)

// ActorStore implements store.ActorStore on PostgreSQL.
type ActorStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewActorStore creates a PostgreSQL implementation of the ActorStore
// interface. The connection is initialized and managed by the caller.
func NewActorStore(db *sql.DB, logger *slog.Logger) *ActorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ActorStore{
		db:     db,
		logger: logger.With(slog.String("component", "actor_store")),
	}
}

var _ store.ActorStore = (*ActorStore)(nil)

// List implements store.ActorStore.List.
func (s *ActorStore) List(ctx context.Context) ([]*domain.Actor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, age, gender FROM actor ORDER BY id`)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var actors []*domain.Actor
	byID := make(map[int64]*domain.Actor)
	for rows.Next() {
		actor, err := scanActor(rows)
		if err != nil {
			return nil, err
		}
		actors = append(actors, actor)
		byID[actor.ID] = actor
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	if err := s.loadMovies(ctx, byID); err != nil {
		return nil, err
	}
	return actors, nil
}

// GetByID implements store.ActorStore.GetByID.
func (s *ActorStore) GetByID(ctx context.Context, id int64) (*domain.Actor, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, age, gender FROM actor WHERE id = $1`, id)

	actor, err := scanActor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrActorNotFound
		}
		return nil, err
	}

	if err := s.loadMovies(ctx, map[int64]*domain.Actor{actor.ID: actor}); err != nil {
		return nil, err
	}
	return actor, nil
}

// Create implements store.ActorStore.Create.
func (s *ActorStore) Create(ctx context.Context, actor *domain.Actor) error {
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO actor (name, age, gender) VALUES ($1, $2, $3) RETURNING id`,
		actor.Name, actor.Age, string(actor.Gender)).Scan(&actor.ID)
	if err != nil {
		return MapError(err)
	}

	s.logger.Debug("actor created", slog.Int64("actor_id", actor.ID))
	return nil
}

// Update implements store.ActorStore.Update.
func (s *ActorStore) Update(ctx context.Context, actor *domain.Actor) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE actor SET name = $1, age = $2, gender = $3 WHERE id = $4`,
		actor.Name, actor.Age, string(actor.Gender), actor.ID)
	if err != nil {
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrActorNotFound)
}

// Delete implements store.ActorStore.Delete. Association rows go with
// the actor through ON DELETE CASCADE.
func (s *ActorStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM actor WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	if err := checkRowsAffected(result, store.ErrActorNotFound); err != nil {
		return err
	}
	s.logger.Debug("actor deleted", slog.Int64("actor_id", id))
	return nil
}

// Count implements store.ActorStore.Count.
func (s *ActorStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM actor`).Scan(&count); err != nil {
		return 0, MapError(err)
	}
	return count, nil
}

// loadMovies populates the movies back-relation for the given actors
// with a single association join.
func (s *ActorStore) loadMovies(ctx context.Context, actors map[int64]*domain.Actor) error {
	if len(actors) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(actors))
	for id := range actors {
		ids = append(ids, id)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT ma.actor_id, m.id, m.title, m.release_date,
		        COALESCE(m.genre, ''), COALESCE(m.description, '')
		   FROM movie_actor ma
		   JOIN movie m ON m.id = ma.movie_id
		  WHERE ma.actor_id = ANY($1)
		  ORDER BY m.id`, ids)
	if err != nil {
		return MapError(err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var actorID int64
		movie := &domain.Movie{}
		var genre string
		if err := rows.Scan(&actorID, &movie.ID, &movie.Title,
			&movie.ReleaseDate, &genre, &movie.Description); err != nil {
			return MapError(err)
		}
		movie.Genre = domain.Genre(genre)
		if actor, ok := actors[actorID]; ok {
			actor.Movies = append(actor.Movies, movie)
		}
	}
	return MapError(rows.Err())
}

// scanActor reads one actor row from a *sql.Row or *sql.Rows.
func scanActor(row interface{ Scan(...any) error }) (*domain.Actor, error) {
	actor := &domain.Actor{}
	var gender string
	if err := row.Scan(&actor.ID, &actor.Name, &actor.Age, &gender); err != nil {
		return nil, err
	}
	actor.Gender = domain.Gender(gender)
	return actor, nil
}
