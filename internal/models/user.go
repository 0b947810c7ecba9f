package models

// Identity is what the identity provider tells us about the signed-in person
type Identity struct {
	Subject  string `json:"auth0_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Verified bool   `json:"-"`
}

// UserProfile is the user record held by the API service
type UserProfile struct {
	ID        string   `json:"_id"`
	Email     string   `json:"email,omitempty"`
	Name      string   `json:"name,omitempty"`
	Bookmarks []string `json:"Bookmarks"`
}
