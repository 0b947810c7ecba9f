package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/config"
	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/models"
)

// SearchType selects the search field on the API service
type SearchType string

const (
	SearchByTitle    SearchType = "title"
	SearchByLocation SearchType = "Location"
)

const (
	markerSuccess       = "Success"
	markerSearchSuccess = "success"
	markerPhotoRemoved  = "Success: Photo URL Removed"
)

// HTTPClient talks to the persistence/API service
type HTTPClient struct {
	apiURL     string
	authURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client. A zero timeout leaves requests unbounded.
func NewClient(cfg config.GatewayConfig) *HTTPClient {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = cfg.APIURL
	}
	return &HTTPClient{
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		authURL:    strings.TrimRight(authURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Search runs a title or location search
func (c *HTTPClient) Search(ctx context.Context, searchType SearchType, input string) ([]models.Experience, error) {
	var out dto.SearchEnvelope
	req := dto.SearchRequest{Type: string(searchType), Input: input}
	if err := c.doJSON(ctx, http.MethodPost, c.apiURL+"/api/search", req, &out); err != nil {
		return nil, err
	}
	if out.Message != markerSearchSuccess {
		return nil, apperrors.NewServerRejectedError(fmt.Sprintf("search returned message %q", out.Message))
	}
	return out.Data, nil
}

// ListExperiences returns every experience
func (c *HTTPClient) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	var out []models.Experience
	if err := c.getEnvelope(ctx, c.apiURL+"/api/experience-data", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetExperience returns a single experience
func (c *HTTPClient) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("experience id is required")
	}
	var out models.Experience
	if err := c.getEnvelope(ctx, c.apiURL+"/api/experience-data/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExperience sends a field-level patch; patch must carry "_id"
func (c *HTTPClient) UpdateExperience(ctx context.Context, patch map[string]any) error {
	var out dto.Envelope
	if err := c.doJSON(ctx, http.MethodPut, c.apiURL+"/api/experience-data", patch, &out); err != nil {
		return err
	}
	return expectMarker("update experience", out.Message)
}

// CreateExperience stores a new experience
func (c *HTTPClient) CreateExperience(ctx context.Context, req dto.ExperienceCreateRequest) error {
	var out dto.Envelope
	if err := c.doJSON(ctx, http.MethodPost, c.apiURL+"/api/experience-data", req, &out); err != nil {
		return err
	}
	return expectMarker("create experience", out.Message)
}

// AddComment posts a review on an experience
func (c *HTTPClient) AddComment(ctx context.Context, req dto.CommentCreateRequest) error {
	var out dto.Envelope
	if err := c.doJSON(ctx, http.MethodPost, c.authURL+"/api/comment-data", req, &out); err != nil {
		return err
	}
	return expectMarker("add comment", out.Message)
}

// UploadPhotos sends files as one multipart form, each under the "file" field
func (c *HTTPClient) UploadPhotos(ctx context.Context, experienceID string, files []models.PhotoUpload) error {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, f.Filename))
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := form.CreatePart(header)
		if err != nil {
			return fmt.Errorf("encode photo %s: %w", f.Filename, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return fmt.Errorf("encode photo %s: %w", f.Filename, err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("encode photos: %w", err)
	}

	var out dto.Envelope
	endpoint := fmt.Sprintf("%s/api/experience-data/%s/photos", c.apiURL, url.PathEscape(experienceID))
	if err := c.do(ctx, http.MethodPost, endpoint, form.FormDataContentType(), &buf, &out); err != nil {
		return err
	}
	return expectMarker("upload photos", out.Message)
}

// RemovePhoto detaches a photo from an experience
func (c *HTTPClient) RemovePhoto(ctx context.Context, experienceID, photoURL string) error {
	var out dto.LowerEnvelope
	endpoint := fmt.Sprintf("%s/api/experience-data/%s/photos", c.apiURL, url.PathEscape(experienceID))
	body := dto.PhotoRemoveRequest{ExperienceID: experienceID, PhotoURL: photoURL}
	if err := c.doJSON(ctx, http.MethodDelete, endpoint, body, &out); err != nil {
		return err
	}
	if out.Message != markerPhotoRemoved {
		msg := out.Error
		if msg == "" {
			msg = out.Message
		}
		return apperrors.NewServerRejectedError(fmt.Sprintf("remove photo: %s", msg))
	}
	return nil
}

// UserBundle returns the user's own experiences and bookmarked experiences
func (c *HTTPClient) UserBundle(ctx context.Context, userID string) (owned, bookmarked []models.Experience, err error) {
	var out dto.Envelope
	if err := c.doJSON(ctx, http.MethodGet, c.authURL+"/api/user-experiences/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, nil, err
	}
	var parts []json.RawMessage
	if err := json.Unmarshal(out.Data, &parts); err != nil || len(parts) != 2 {
		return nil, nil, apperrors.NewServerRejectedError("user bundle is not a 2-element array")
	}
	if err := json.Unmarshal(parts[0], &owned); err != nil || owned == nil {
		return nil, nil, apperrors.NewServerRejectedError("user bundle experiences is not an array")
	}
	if err := json.Unmarshal(parts[1], &bookmarked); err != nil || bookmarked == nil {
		return nil, nil, apperrors.NewServerRejectedError("user bundle bookmarks is not an array")
	}
	return owned, bookmarked, nil
}

// UserTrips returns the trips owned by the user
func (c *HTTPClient) UserTrips(ctx context.Context, userID string) ([]models.Trip, error) {
	var out dto.Envelope
	if err := c.doJSON(ctx, http.MethodGet, c.authURL+"/api/user-trips/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	var trips []models.Trip
	if err := json.Unmarshal(out.Data, &trips); err != nil || trips == nil {
		return nil, apperrors.NewServerRejectedError("user trips is not an array")
	}
	return trips, nil
}

// UserProfile returns the user record including the bookmark set
func (c *HTTPClient) UserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.getEnvelope(ctx, c.apiURL+"/api/user-data/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	if out.Bookmarks == nil {
		out.Bookmarks = []string{}
	}
	return &out, nil
}

// ReplaceBookmarks overwrites the user's whole bookmark collection
func (c *HTTPClient) ReplaceBookmarks(ctx context.Context, userID string, ids []string) error {
	var out dto.Envelope
	body := dto.BookmarksUpdateRequest{MongoID: userID, Bookmarks: ids}
	if err := c.doJSON(ctx, http.MethodPut, c.apiURL+"/api/user-data", body, &out); err != nil {
		return err
	}
	return expectMarker("replace bookmarks", out.Message)
}

// GetTrip returns a trip and its expanded experiences
func (c *HTTPClient) GetTrip(ctx context.Context, id string) (*models.Trip, []models.Experience, error) {
	var parts []json.RawMessage
	if err := c.getEnvelope(ctx, c.authURL+"/api/trip-data/"+url.PathEscape(id), &parts); err != nil {
		return nil, nil, err
	}
	if len(parts) != 2 {
		return nil, nil, apperrors.NewServerRejectedError("trip payload is not a 2-element array")
	}
	var trip models.Trip
	if err := json.Unmarshal(parts[0], &trip); err != nil {
		return nil, nil, apperrors.NewParseError("decode trip", err)
	}
	var experiences []models.Experience
	if err := json.Unmarshal(parts[1], &experiences); err != nil {
		return nil, nil, apperrors.NewParseError("decode trip experiences", err)
	}
	return &trip, experiences, nil
}

// CreateTrip submits a new trip
func (c *HTTPClient) CreateTrip(ctx context.Context, trip models.Trip) error {
	return c.doJSON(ctx, http.MethodPost, c.authURL+"/api/trip-data", trip, nil)
}

// Recommendations asks the AI endpoint for raw recommendation text
func (c *HTTPClient) Recommendations(ctx context.Context, req dto.RecommendationRequest) (string, error) {
	var out dto.RecommendationEnvelope
	if err := c.doJSON(ctx, http.MethodPost, c.authURL+"/get_recommendations", req, &out); err != nil {
		return "", err
	}
	return out.Recommendations, nil
}

// SyncUser registers the signed-in identity and returns the stable user id
func (c *HTTPClient) SyncUser(ctx context.Context, identity models.Identity) (string, error) {
	var out dto.SyncUserResponse
	if err := c.doJSON(ctx, http.MethodPost, c.authURL+"/api/sync-user", identity, &out); err != nil {
		return "", err
	}
	if out.UserID == "" {
		return "", apperrors.NewServerRejectedError("sync-user returned no userID")
	}
	return out.UserID, nil
}

// Ping checks that the API service answers at all
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.apiURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewNetworkError("ping", err)
	}
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) getEnvelope(ctx context.Context, endpoint string, data any) error {
	var out dto.Envelope
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return err
	}
	if err := expectMarker("GET "+endpoint, out.Message); err != nil {
		return err
	}
	if err := json.Unmarshal(out.Data, data); err != nil {
		return apperrors.NewParseError("decode "+endpoint, err)
	}
	return nil
}

func expectMarker(op, message string) error {
	if message != markerSuccess {
		return apperrors.NewServerRejectedError(fmt.Sprintf("%s returned Message %q", op, message))
	}
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, body any, out any) error {
	if body == nil {
		return c.do(ctx, method, endpoint, "", nil, out)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, method, endpoint, "application/json", bytes.NewReader(payload), out)
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint, contentType string, body io.Reader, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperrors.NewNetworkError(method+" "+endpoint, err)
	}
	defer resp.Body.Close()

	logging.FromContext(ctx).Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("gateway call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewServerRejectedError(fmt.Sprintf("%s %s returned status %d", method, endpoint, resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewParseError("decode "+endpoint, err)
	}
	return nil
}
