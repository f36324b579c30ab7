package domain

// Gender is a closed enumeration of actor genders. Values are stored
// under their short key and rendered with their display label.
type Gender string

// Recognized gender keys.
const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

var genderLabels = map[Gender]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
}

// Valid reports whether g is a recognized gender key.
func (g Gender) Valid() bool {
	_, ok := genderLabels[g]
	return ok
}

// Label returns the display label for the gender ("Male", "Female").
// Unrecognized values render as their raw key.
func (g Gender) Label() string {
	if label, ok := genderLabels[g]; ok {
		return label
	}
	return string(g)
}
