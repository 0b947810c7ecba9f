package dto

// HealthResponse reports process health; readiness adds the state of each
// dependency, "ok" or the ping error
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// SearchQueryRequest is one keystroke in the search box. An empty mode
// means the active one.
type SearchQueryRequest struct {
	Mode  string `json:"mode,omitempty"`
	Query string `json:"query"`
}

// SearchModeRequest switches the search box between title and location
type SearchModeRequest struct {
	Mode string `json:"mode"`
}

// SearchSelectRequest resolves a chosen suggestion
type SearchSelectRequest struct {
	Mode  string `json:"mode"`
	Label string `json:"label"`
}

// SearchSelectResponse is where the UI should navigate
type SearchSelectResponse struct {
	Kind   string `json:"kind"` // experience | location
	Target string `json:"target"`
	Path   string `json:"path"`
}

// SearchResponse wraps a search outcome with an optional notice
type SearchResponse struct {
	Outcome any     `json:"outcome"`
	Notice  *string `json:"notice,omitempty"`
}

// ExperienceEditRequest carries the edit form of an experience; omitted
// fields keep their current value
type ExperienceEditRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	EventDate   *string `json:"eventDate,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// ExperienceSubmitRequest is the "share your experience" form
type ExperienceSubmitRequest struct {
	Title       string `json:"title"`
	EventDate   string `json:"eventDate"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// ReviewRequest is a star rating and comment on an experience
type ReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

// PhotoDeleteRequest names the photo to detach
type PhotoDeleteRequest struct {
	PhotoURL string `json:"photo_url"`
}

// BookmarkToggleRequest toggles one experience in the bookmark set
type BookmarkToggleRequest struct {
	ExperienceID string `json:"experience_id"`
}

// BookmarkToggleResponse reports the resulting state
type BookmarkToggleResponse struct {
	ExperienceID string   `json:"experience_id"`
	Bookmarked   bool     `json:"bookmarked"`
	Bookmarks    []string `json:"bookmarks"`
}

// BookmarksResponse lists the bookmarked experience ids
type BookmarksResponse struct {
	Bookmarks []string `json:"bookmarks"`
}

// PreferencesRequest is the recommendation form
type PreferencesRequest struct {
	Location        string   `json:"location"`
	TripDate        string   `json:"trip_date"`
	TravelGroup     string   `json:"travel_group"`
	Interests       []string `json:"interests"`
	CustomInterests string   `json:"custom_interests,omitempty"`
}

// ParseRequest carries a raw recommendation answer
type ParseRequest struct {
	Raw string `json:"raw"`
}

// RecommendationResponse is a parsed recommendation answer
type RecommendationResponse struct {
	Status string `json:"status"`
	Model  any    `json:"model,omitempty"`
	Error  string `json:"error,omitempty"`
}

// DashboardResponse holds every collection's view-state
type DashboardResponse struct {
	Collections any `json:"collections"`
}

// TripCreateRequest is a trip draft being submitted
type TripCreateRequest struct {
	Title       string   `json:"title"`
	Experiences []string `json:"experiences"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Completed   bool     `json:"completed"`
}

// NoticeListResponse lists the session's notices
type NoticeListResponse struct {
	Notices     any `json:"notices"`
	UnreadCount int `json:"unread_count"`
}

// NoticeReadRequest marks one notice read
type NoticeReadRequest struct {
	ID string `json:"id"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

