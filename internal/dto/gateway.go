package dto

import (
	"encoding/json"

	"TRAVELSHARE_CLIENT/internal/models"
)

// Wire contracts of the persistence/API service. The success marker key is
// "message" on search and "Message" elsewhere; both are kept as served.

// SearchRequest is the body of POST /api/search
type SearchRequest struct {
	Type  string `json:"type"` // "title" | "Location"
	Input string `json:"input"`
}

// SearchEnvelope is the response of POST /api/search
type SearchEnvelope struct {
	Message string              `json:"message"`
	Data    []models.Experience `json:"data"`
}

// Envelope is the response shape of the capitalised-marker endpoints
type Envelope struct {
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"data"`
}

// LowerEnvelope is the response shape of endpoints that only carry a lowercase message
type LowerEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"Error,omitempty"`
}

// BookmarksUpdateRequest is the body of PUT /api/user-data
type BookmarksUpdateRequest struct {
	MongoID   string   `json:"mongo_id"`
	Bookmarks []string `json:"Bookmarks"`
}

// ExperienceCreateRequest is the body of POST /api/experience-data
type ExperienceCreateRequest struct {
	Title        string        `json:"title"`
	EventDate    string        `json:"eventDate"`
	CreationDate string        `json:"creationDate"`
	Description  string        `json:"description"`
	Location     string        `json:"location"`
	Rating       models.Rating `json:"rating"`
	User         []string      `json:"User"`
}

// CommentCreateRequest is the body of POST /api/comment-data
type CommentCreateRequest struct {
	CommentDate string   `json:"commentDate"`
	Comment     string   `json:"Comment"`
	Rating      int      `json:"rating"`
	User        []string `json:"User"`
	Experience  []string `json:"Experience"`
}

// PhotoRemoveRequest is the body of DELETE /api/experience-data/{id}/photos
type PhotoRemoveRequest struct {
	ExperienceID string `json:"experience_id"`
	PhotoURL     string `json:"photo_url"`
}

// RecommendationRequest is the trip-preference form posted to /get_recommendations
type RecommendationRequest struct {
	Location    string   `json:"location"`
	TripDate    string   `json:"trip_date"`
	TravelGroup string   `json:"travel_group"`
	Interests   []string `json:"interests"`
}

// RecommendationEnvelope carries the raw model output
type RecommendationEnvelope struct {
	Recommendations string `json:"recommendations"`
}

// SyncUserResponse is returned by POST /api/sync-user
type SyncUserResponse struct {
	UserID string `json:"userID"`
}
