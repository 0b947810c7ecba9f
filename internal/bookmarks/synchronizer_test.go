package bookmarks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/models"
)

type principal struct {
	authenticated bool
	userID        string
}

func (p principal) IsAuthenticated() bool { return p.authenticated }
func (p principal) UserID() string        { return p.userID }

type fakeStore struct {
	remote   []string
	writes   [][]string
	reads    int
	writeErr error
}

func (f *fakeStore) UserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	f.reads++
	return &models.UserProfile{ID: userID, Bookmarks: append([]string{}, f.remote...)}, nil
}

func (f *fakeStore) ReplaceBookmarks(ctx context.Context, userID string, ids []string) error {
	f.writes = append(f.writes, append([]string{}, ids...))
	if f.writeErr != nil {
		return f.writeErr
	}
	f.remote = append([]string{}, ids...)
	return nil
}

func signedIn() principal { return principal{authenticated: true, userID: "u1"} }

func TestToggle_AddThenRemove(t *testing.T) {
	store := &fakeStore{remote: []string{"x2"}}
	s := NewSynchronizer(store, signedIn())
	require.NoError(t, s.Load(context.Background()))

	added, err := s.Toggle(context.Background(), "x1")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"x2", "x1"}, s.IDs())
	assert.Equal(t, []string{"x2", "x1"}, store.writes[0])

	added, err = s.Toggle(context.Background(), "x1")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"x2"}, s.IDs())
	assert.Equal(t, []string{"x2"}, store.writes[1])
}

func TestToggle_TwiceIsIdentity(t *testing.T) {
	for _, start := range [][]string{{}, {"a"}, {"a", "b", "c"}} {
		store := &fakeStore{remote: start}
		s := NewSynchronizer(store, signedIn())
		require.NoError(t, s.Load(context.Background()))

		for _, id := range []string{"a", "z"} {
			before := s.IDs()
			_, err := s.Toggle(context.Background(), id)
			require.NoError(t, err)
			_, err = s.Toggle(context.Background(), id)
			require.NoError(t, err)
			assert.ElementsMatch(t, before, s.IDs())
		}
	}
}

func TestToggle_Unauthenticated(t *testing.T) {
	store := &fakeStore{remote: []string{"x2"}}
	s := NewSynchronizer(store, principal{})

	_, err := s.Toggle(context.Background(), "x1")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	assert.Empty(t, store.writes)
	assert.Zero(t, store.reads)
	assert.Empty(t, s.IDs())

	err = s.Load(context.Background())
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	assert.Zero(t, store.reads)
}

func TestToggle_FailureLeavesLocalState(t *testing.T) {
	store := &fakeStore{remote: []string{"x2"}}
	s := NewSynchronizer(store, signedIn())
	require.NoError(t, s.Load(context.Background()))

	store.writeErr = apperrors.NewServerRejectedError("replace bookmarks returned Message \"Error\"")
	added, err := s.Toggle(context.Background(), "x1")
	assert.Error(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"x2"}, s.IDs())
	assert.False(t, s.Has("x1"))
	// the whole set was still what got sent
	assert.Equal(t, []string{"x2", "x1"}, store.writes[0])
}

func TestToggle_EmptyID(t *testing.T) {
	s := NewSynchronizer(&fakeStore{}, signedIn())
	_, err := s.Toggle(context.Background(), "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
}

func TestLoad_DedupesRemote(t *testing.T) {
	store := &fakeStore{remote: []string{"a", "b", "a"}}
	s := NewSynchronizer(store, signedIn())
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, []string{"a", "b"}, s.IDs())
}

type failingProfileStore struct{ fakeStore }

func (f *failingProfileStore) UserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	f.reads++
	return nil, errors.New("boom")
}

func TestLoad_FailureKeepsMirror(t *testing.T) {
	store := &fakeStore{remote: []string{"a"}}
	s := NewSynchronizer(store, signedIn())
	require.NoError(t, s.Load(context.Background()))

	failing := &failingProfileStore{}
	s.store = failing
	assert.Error(t, s.Load(context.Background()))
	assert.Equal(t, []string{"a"}, s.IDs())
	assert.True(t, s.Loaded())
}

func TestToggle_LoadsMirrorFirst(t *testing.T) {
	store := &fakeStore{remote: []string{"a", "b", "c"}}
	s := NewSynchronizer(store, signedIn())
	assert.False(t, s.Loaded())

	added, err := s.Toggle(context.Background(), "x")
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, store.reads)
	require.Len(t, store.writes, 1)
	assert.Equal(t, []string{"a", "b", "c", "x"}, store.writes[0])
	assert.Equal(t, []string{"a", "b", "c", "x"}, store.remote)
}

func TestToggle_UnloadedMirrorFailsWithoutWriting(t *testing.T) {
	store := &failingProfileStore{fakeStore: fakeStore{remote: []string{"a", "b", "c"}}}
	s := NewSynchronizer(store, signedIn())

	_, err := s.Toggle(context.Background(), "x")
	assert.Error(t, err)
	assert.Empty(t, store.writes)
	assert.Equal(t, []string{"a", "b", "c"}, store.remote)
	assert.False(t, s.Loaded())
	assert.Empty(t, s.IDs())

	// the next toggle retries the load
	_, err = s.Toggle(context.Background(), "x")
	assert.Error(t, err)
	assert.Equal(t, 2, store.reads)
	assert.Empty(t, store.writes)
}
