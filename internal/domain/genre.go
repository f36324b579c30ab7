package domain

// Genre is a closed enumeration of movie genres. The zero value means
// "no genre". Like Gender, values are stored under their key and
// rendered with their display label (most labels equal their key, the
// multi-word ones differ).
type Genre string

var genreLabels = map[Genre]string{
	"Action":         "Action",
	"Adventure":      "Adventure",
	"Animated":       "Animated",
	"Biography":      "Biography",
	"Comedy":         "Comedy",
	"Crime":          "Crime",
	"Dance":          "Dance",
	"Disaster":       "Disaster",
	"Documentary":    "Documentary",
	"Drama":          "Drama",
	"Erotic":         "Erotic",
	"Family":         "Family",
	"Fantasy":        "Fantasy",
	"FoundFootage":   "Found Footage",
	"Historical":     "Historical",
	"Horror":         "Horror",
	"Independent":    "Independent",
	"Legal":          "Legal",
	"LiveAction":     "Live Action",
	"MartialArts":    "Martial Arts",
	"Musical":        "Musical",
	"Mystery":        "Mystery",
	"Noir":           "Noir",
	"Performance":    "Performance",
	"Political":      "Political",
	"Romance":        "Romance",
	"Satire":         "Satire",
	"ScienceFiction": "Science Fiction",
	"Short":          "Short",
	"Silent":         "Silent",
	"Slasher":        "Slasher",
	"Sports":         "Sports",
	"Spy":            "Spy",
	"Superhero":      "Superhero",
	"Supernatural":   "Supernatural",
	"Suspense":       "Suspense",
	"Teen":           "Teen",
	"Thriller":       "Thriller",
	"War":            "War",
	"Western":        "Western",
}

// Valid reports whether g is a recognized genre key. The empty genre
// is not valid on its own; callers treat it as "unset".
func (g Genre) Valid() bool {
	_, ok := genreLabels[g]
	return ok
}

// Label returns the display label for the genre. Unrecognized values
// render as their raw key.
func (g Genre) Label() string {
	if label, ok := genreLabels[g]; ok {
		return label
	}
	return string(g)
}
