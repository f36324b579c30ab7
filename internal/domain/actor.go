package domain

import "unicode"

// Actor represents a cast member. The Movies slice is the derived
// back-relation populated through the movie/actor association; it is
// never persisted from the actor side.
type Actor struct {
	ID     int64
	Name   string
	Age    int
	Gender Gender

	Movies []*Movie
}

// NewActor creates an Actor and validates its fields.
func NewActor(name string, age int, gender Gender) (*Actor, error) {
	actor := &Actor{
		Name:   name,
		Age:    age,
		Gender: gender,
	}

	if err := actor.Validate(); err != nil {
		return nil, err
	}

	return actor, nil
}

// Validate checks all field-level constraints on the actor.
func (a *Actor) Validate() error {
	if !isAlphabetic(a.Name) {
		return NewValidationError("name", "Name must contain only alphabetic characters")
	}
	if len([]rune(a.Name)) < 3 {
		return NewValidationError("name", "Name must contain at least 3 characters")
	}
	if a.Age < 0 {
		return NewValidationError("age", "Age must be greater than 0")
	}
	if !a.Gender.Valid() {
		return NewValidationError("gender", `Gender must be "M" or "F"`)
	}
	return nil
}

// ApplyPatch overwrites the actor's fields with the non-zero values of
// the patch and re-validates. Zero values (empty name, zero age, empty
// gender) are skipped, so a patch cannot clear a field.
func (a *Actor) ApplyPatch(name string, age int, gender Gender) error {
	if name != "" {
		a.Name = name
	}
	if age != 0 {
		a.Age = age
	}
	if gender != "" {
		a.Gender = gender
	}
	return a.Validate()
}

// ActorShort is the flat serialization shape of an actor.
type ActorShort struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}

// ActorDetail is the long serialization shape: scalar fields plus the
// actor's movies in their short shape. Embedding movies as MovieShort
// keeps the serialization from recursing back into actors.
type ActorDetail struct {
	ActorShort
	Movies      []MovieShort `json:"movies"`
	TotalMovies int          `json:"total_movies"`
}

// Short returns the flat view of the actor.
func (a *Actor) Short() ActorShort {
	return ActorShort{
		ID:     a.ID,
		Name:   a.Name,
		Age:    a.Age,
		Gender: a.Gender.Label(),
	}
}

// Format returns the long view of the actor, with related movies in
// their short shape.
func (a *Actor) Format() ActorDetail {
	movies := make([]MovieShort, 0, len(a.Movies))
	for _, m := range a.Movies {
		movies = append(movies, m.Short())
	}

	return ActorDetail{
		ActorShort:  a.Short(),
		Movies:      movies,
		TotalMovies: len(movies),
	}
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
