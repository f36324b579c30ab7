package store

import (
	"context"

	"github.com/hmekki/casting-api/internal/domain"
)

// ActorStore defines the interface for actor data persistence.
type ActorStore interface {
	// List retrieves all actors ordered by ID, each with its movies
	// back-relation populated.
	List(ctx context.Context) ([]*domain.Actor, error)

	// GetByID retrieves an actor by its ID with its movies populated.
	// Returns ErrActorNotFound if the actor does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Actor, error)

	// Create persists a new actor and assigns its ID.
	Create(ctx context.Context, actor *domain.Actor) error

	// Update persists the actor's scalar fields.
	// Returns ErrActorNotFound if the actor does not exist.
	Update(ctx context.Context, actor *domain.Actor) error

	// Delete removes an actor and its association rows.
	// Returns ErrActorNotFound if the actor does not exist.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of actors.
	Count(ctx context.Context) (int64, error)
}
