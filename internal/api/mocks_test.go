package api_test

import (
	"context"

	"github.com/hmekki/casting-api/internal/domain"
	"github.com/hmekki/casting-api/internal/store"
)

// mockActorStore implements store.ActorStore with function fields so
// each test sets only the behavior it needs.
type mockActorStore struct {
	listFn    func(ctx context.Context) ([]*domain.Actor, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Actor, error)
	createFn  func(ctx context.Context, actor *domain.Actor) error
	updateFn  func(ctx context.Context, actor *domain.Actor) error
	deleteFn  func(ctx context.Context, id int64) error
	countFn   func(ctx context.Context) (int64, error)
}

var _ store.ActorStore = (*mockActorStore)(nil)

func (m *mockActorStore) List(ctx context.Context) ([]*domain.Actor, error) {
	return m.listFn(ctx)
}

func (m *mockActorStore) GetByID(ctx context.Context, id int64) (*domain.Actor, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockActorStore) Create(ctx context.Context, actor *domain.Actor) error {
	return m.createFn(ctx, actor)
}

func (m *mockActorStore) Update(ctx context.Context, actor *domain.Actor) error {
	return m.updateFn(ctx, actor)
}

func (m *mockActorStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockActorStore) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

// mockMovieStore implements store.MovieStore with function fields.
type mockMovieStore struct {
	listFn    func(ctx context.Context) ([]*domain.Movie, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.Movie, error)
	createFn  func(ctx context.Context, movie *domain.Movie) error
	updateFn  func(ctx context.Context, movie *domain.Movie, replaceActors bool) error
	deleteFn  func(ctx context.Context, id int64) error
	countFn   func(ctx context.Context) (int64, error)
}

var _ store.MovieStore = (*mockMovieStore)(nil)

func (m *mockMovieStore) List(ctx context.Context) ([]*domain.Movie, error) {
	return m.listFn(ctx)
}

func (m *mockMovieStore) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockMovieStore) Create(ctx context.Context, movie *domain.Movie) error {
	return m.createFn(ctx, movie)
}

func (m *mockMovieStore) Update(ctx context.Context, movie *domain.Movie, replaceActors bool) error {
	return m.updateFn(ctx, movie, replaceActors)
}

func (m *mockMovieStore) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockMovieStore) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}
