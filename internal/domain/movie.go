package domain

import "time"

// ReleaseDateFormat is the wire format for movie release dates,
// day-month-year.
const ReleaseDateFormat = "02-01-2006"

// Movie represents a movie and its cast. Actors is the owning side of
// the movie/actor association.
type Movie struct {
	ID          int64
	Title       string
	ReleaseDate time.Time
	Genre       Genre
	Description string

	Actors []*Actor
}

// NewMovie creates a Movie from wire-format inputs and validates its
// fields. releaseDate must be a DD-MM-YYYY string; genre may be empty.
func NewMovie(title, releaseDate string, genre Genre, description string) (*Movie, error) {
	parsed, err := ParseReleaseDate(releaseDate)
	if err != nil {
		return nil, err
	}

	movie := &Movie{
		Title:       title,
		ReleaseDate: parsed,
		Genre:       genre,
		Description: description,
	}

	if err := movie.Validate(); err != nil {
		return nil, err
	}

	return movie, nil
}

// ParseReleaseDate parses a DD-MM-YYYY string into a calendar date.
// Invalid calendar dates such as "31-02-2020" are rejected.
func ParseReleaseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(ReleaseDateFormat, value)
	if err != nil {
		return time.Time{}, NewValidationError("release_date", "release_date must be a valid DD-MM-YYYY date")
	}
	return parsed, nil
}

// Validate checks all field-level constraints on the movie. Title
// uniqueness is enforced by the store, not here.
func (m *Movie) Validate() error {
	if len(m.Title) < 1 {
		return NewValidationError("title", "Title must not be empty")
	}
	if m.ReleaseDate.IsZero() {
		return NewValidationError("release_date", "release_date is required")
	}
	if m.Genre != "" && !m.Genre.Valid() {
		return NewValidationError("genre", "Genre is not a recognized genre")
	}
	return nil
}

// MoviePatch carries the fields of a partial movie update. Zero values
// mean "leave unchanged"; Actors is applied only when ActorsSet is
// true, and then replaces the cast wholesale.
type MoviePatch struct {
	Title       string
	ReleaseDate string
	Genre       Genre
	Description string
	Actors      []*Actor
	ActorsSet   bool
}

// ApplyPatch overwrites the movie's fields with the non-zero values of
// the patch and re-validates.
func (m *Movie) ApplyPatch(patch MoviePatch) error {
	if patch.Title != "" {
		m.Title = patch.Title
	}
	if patch.ReleaseDate != "" {
		parsed, err := ParseReleaseDate(patch.ReleaseDate)
		if err != nil {
			return err
		}
		m.ReleaseDate = parsed
	}
	if patch.Genre != "" {
		m.Genre = patch.Genre
	}
	if patch.Description != "" {
		m.Description = patch.Description
	}
	if patch.ActorsSet {
		m.Actors = patch.Actors
	}
	return m.Validate()
}

// MovieShort is the flat serialization shape of a movie.
type MovieShort struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Genre       string `json:"genre,omitempty"`
	Description string `json:"description,omitempty"`
}

// MovieDetail is the long serialization shape: scalar fields plus the
// cast in its short shape.
type MovieDetail struct {
	MovieShort
	Actors      []ActorShort `json:"actors"`
	TotalActors int          `json:"total_actors"`
}

// Short returns the flat view of the movie.
func (m *Movie) Short() MovieShort {
	return MovieShort{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate.Format(ReleaseDateFormat),
		Genre:       m.Genre.Label(),
		Description: m.Description,
	}
}

// Format returns the long view of the movie, with the cast in its
// short shape.
func (m *Movie) Format() MovieDetail {
	actors := make([]ActorShort, 0, len(m.Actors))
	for _, a := range m.Actors {
		actors = append(actors, a.Short())
	}

	return MovieDetail{
		MovieShort:  m.Short(),
		Actors:      actors,
		TotalActors: len(actors),
	}
}
