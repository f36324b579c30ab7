package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	// Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a
	// uniqueness constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity violates a database
	// constraint other than uniqueness (foreign key, not null, check).
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrActorNotFound indicates that the requested actor does not exist.
	ErrActorNotFound = fmt.Errorf("%w: actor", ErrNotFound)

	// ErrMovieNotFound indicates that the requested movie does not exist.
	ErrMovieNotFound = fmt.Errorf("%w: movie", ErrNotFound)

	// ErrTitleExists indicates that a movie with the given title already exists.
	ErrTitleExists = fmt.Errorf("%w: title", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
