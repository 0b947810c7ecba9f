package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/config"
	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.GatewayConfig{APIURL: srv.URL})
}

func TestSearch_SendsTypeAndInput(t *testing.T) {
	var got dto.SearchRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"message":"success","data":[{"_id":"e1","title":"Paris Walk","location":"Paris"}]}`))
	})

	results, err := client.Search(context.Background(), SearchByLocation, "Par")
	require.NoError(t, err)
	assert.Equal(t, "Location", got.Type)
	assert.Equal(t, "Par", got.Input)
	require.Len(t, results, 1)
	assert.Equal(t, "e1", results[0].ID)
}

func TestSearch_MarkerCasingIsPerEndpoint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// capitalised marker is not the search contract
		w.Write([]byte(`{"Message":"Success","data":[]}`))
	})

	_, err := client.Search(context.Background(), SearchByTitle, "x")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServerRejected))
}

func TestListExperiences(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/experience-data", r.URL.Path)
		w.Write([]byte(`{"Message":"Success","data":[{"_id":"a","title":"A","rating":{"average":4.5,"total":2}}]}`))
	})

	exps, err := client.ListExperiences(context.Background())
	require.NoError(t, err)
	require.Len(t, exps, 1)
	assert.Equal(t, 4.5, exps[0].Rating.Average)
}

func TestUserBundle_RequiresTwoArrays(t *testing.T) {
	body := `{"data":[[{"_id":"o1","title":"Mine"}],[{"_id":"b1","title":"Saved"}]]}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user-experiences/u1", r.URL.Path)
		w.Write([]byte(body))
	})

	owned, bookmarked, err := client.UserBundle(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "o1", owned[0].ID)
	assert.Equal(t, "b1", bookmarked[0].ID)

	body = `{"data":[[{"_id":"o1"}]]}`
	_, _, err = client.UserBundle(context.Background(), "u1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServerRejected))

	body = `{"data":[null,[]]}`
	_, _, err = client.UserBundle(context.Background(), "u1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServerRejected))
}

func TestReplaceBookmarks_SendsWholeSet(t *testing.T) {
	var got dto.BookmarksUpdateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/user-data", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"Message":"Success"}`))
	})

	err := client.ReplaceBookmarks(context.Background(), "u1", []string{"x2", "x1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", got.MongoID)
	assert.Equal(t, []string{"x2", "x1"}, got.Bookmarks)
}

func TestUserProfile_NilBookmarksBecomeEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Message":"Success","data":{"_id":"u1"}}`))
	})

	profile, err := client.UserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, profile.Bookmarks)
	assert.Empty(t, profile.Bookmarks)
}

func TestGetTrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/trip-data/t1", r.URL.Path)
		w.Write([]byte(`{"Message":"Success","data":[{"_id":"t1","title":"Rome","Experience":["e1"],"eventDate":{"start":"2024-05-01","end":"2024-05-04"}},[{"_id":"e1","title":"Colosseum"}]]}`))
	})

	trip, exps, err := client.GetTrip(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "Rome", trip.Title)
	assert.Equal(t, "2024-05-04", trip.EventDate.End)
	require.Len(t, exps, 1)
	assert.Equal(t, "Colosseum", exps[0].Title)
}

func TestSyncUser(t *testing.T) {
	var got models.Identity
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sync-user", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"userID":"mongo-1"}`))
	})

	id, err := client.SyncUser(context.Background(), models.Identity{Subject: "google|1", Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, "mongo-1", id)
	assert.Equal(t, "google|1", got.Subject)
}

func TestDoJSON_ErrorTaxonomy(t *testing.T) {
	status := http.StatusInternalServerError
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(`not json`))
	})

	_, err := client.ListExperiences(context.Background())
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServerRejected))

	status = http.StatusOK
	_, err = client.ListExperiences(context.Background())
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeParse))

	unreachable := NewClient(config.GatewayConfig{APIURL: "http://127.0.0.1:1"})
	_, err = unreachable.ListExperiences(context.Background())
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNetwork))
}

func TestRemovePhoto(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/experience-data/e1/photos", r.URL.Path)
		w.Write([]byte(`{"message":"Success: Photo URL Removed"}`))
	})

	assert.NoError(t, client.RemovePhoto(context.Background(), "e1", "http://img/1.jpg"))
}

func TestCreateExperience(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/experience-data", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"Message":"Success"}`))
	})

	err := client.CreateExperience(context.Background(), dto.ExperienceCreateRequest{
		Title:        "Gelato tour",
		EventDate:    "2024-06-01",
		CreationDate: "2024-05-01",
		Location:     "Rome",
		User:         []string{"u1"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"average": float64(0), "total": float64(0)}, got["rating"])
	assert.Equal(t, []any{"u1"}, got["User"])
	_, hasID := got["_id"]
	assert.False(t, hasID)
}

func TestAddComment_RequiresSuccessMarker(t *testing.T) {
	var got dto.CommentCreateRequest
	marker := "Success"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/comment-data", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"Message":"` + marker + `"}`))
	})

	req := dto.CommentCreateRequest{CommentDate: "2024-06-02", Comment: "Lovely", Rating: 4, User: []string{"u1"}, Experience: []string{"e1"}}
	require.NoError(t, client.AddComment(context.Background(), req))
	assert.Equal(t, req, got)

	marker = "Error"
	err := client.AddComment(context.Background(), req)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeServerRejected))
}

func TestUploadPhotos_SendsMultipartFiles(t *testing.T) {
	var names []string
	var sizes []int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/experience-data/e1/photos", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		for _, fh := range r.MultipartForm.File["file"] {
			names = append(names, fh.Filename)
			sizes = append(sizes, int(fh.Size))
		}
		w.Write([]byte(`{"Message":"Success"}`))
	})

	err := client.UploadPhotos(context.Background(), "e1", []models.PhotoUpload{
		{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("aaaa")},
		{Filename: "b.png", Data: []byte("bb")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.png"}, names)
	assert.Equal(t, []int{4, 2}, sizes)
}
