package models

// Rating is the aggregate star rating of an experience
type Rating struct {
	Average float64 `json:"average"`
	Total   int     `json:"total"`
}

// Photo references an uploaded picture of an experience
type Photo struct {
	URL string `json:"photo_url"`
}

// PhotoUpload is one picture file on its way to the API service
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Comment is a review left on an experience
type Comment struct {
	Authors []string `json:"User,omitempty"`
	Text    string   `json:"Comment"`
	Date    string   `json:"commentDate"`
	Rating  float64  `json:"rating"`
}

// Experience is a user-submitted place or event as served by the API service
type Experience struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description,omitempty"`
	EventDate    string    `json:"eventDate,omitempty"`
	CreationDate string    `json:"creationDate,omitempty"`
	User         []string  `json:"User,omitempty"`
	Rating       *Rating   `json:"rating,omitempty"`
	Photos       []Photo   `json:"photo_data,omitempty"`
	Comments     []Comment `json:"Comment,omitempty"`
}

// OwnedBy reports whether userID is among the owners of the experience
func (e Experience) OwnedBy(userID string) bool {
	for _, u := range e.User {
		if u == userID {
			return true
		}
	}
	return false
}
