package models

// DateRange is an optional trip date span; both ends are set or neither is
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IsZero reports whether neither end is set
func (d DateRange) IsZero() bool {
	return d.Start == "" && d.End == ""
}

// IsPartial reports whether exactly one end is set
func (d DateRange) IsPartial() bool {
	return (d.Start == "") != (d.End == "")
}

// Trip is a user-curated ordered collection of experiences
type Trip struct {
	ID           string    `json:"_id,omitempty"`
	Title        string    `json:"title"`
	User         []string  `json:"User"`
	Experiences  []string  `json:"Experience"`
	EventDate    DateRange `json:"eventDate"`
	CreationDate string    `json:"creationDate,omitempty"`
	Completed    bool      `json:"completed"`
}

// OwnedBy reports whether userID is one of the trip's owners
func (t Trip) OwnedBy(userID string) bool {
	for _, u := range t.User {
		if u == userID {
			return true
		}
	}
	return false
}
