package bookmarks

import (
	"context"
	"fmt"
	"sync"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/models"
)

// Store is the remote side of the bookmark set
type Store interface {
	UserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	ReplaceBookmarks(ctx context.Context, userID string, ids []string) error
}

// Principal identifies who the bookmarks belong to
type Principal interface {
	IsAuthenticated() bool
	UserID() string
}

// Synchronizer mirrors the signed-in user's bookmark set.
//
// Every toggle overwrites the whole remote set. Two toggles issued before
// the first one returns race at the API service and the later write wins.
// A toggle is never computed from a mirror that has not been read from the
// API service, or it would replace the remote set with a single id.
type Synchronizer struct {
	store     Store
	principal Principal

	mu     sync.Mutex
	ids    []string
	loaded bool
}

// NewSynchronizer creates an empty mirror for principal
func NewSynchronizer(store Store, principal Principal) *Synchronizer {
	return &Synchronizer{store: store, principal: principal, ids: []string{}}
}

// Load replaces the local mirror with the remote set
func (s *Synchronizer) Load(ctx context.Context) error {
	if !s.principal.IsAuthenticated() {
		return apperrors.NewUnauthorizedError("You must be signed in to see bookmarks.")
	}
	profile, err := s.store.UserProfile(ctx, s.principal.UserID())
	if err != nil {
		return fmt.Errorf("load bookmarks: %w", err)
	}
	s.mu.Lock()
	s.ids = dedupe(profile.Bookmarks)
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Loaded reports whether the mirror has been read from the API service
func (s *Synchronizer) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Toggle flips membership of id and persists the resulting set. The local
// mirror only changes once the API service accepted the write. An unloaded
// mirror is loaded first; if that fails nothing is written.
func (s *Synchronizer) Toggle(ctx context.Context, id string) (bookmarked bool, err error) {
	if !s.principal.IsAuthenticated() {
		return false, apperrors.NewUnauthorizedError("You must be signed in to bookmark.")
	}
	if id == "" {
		return false, apperrors.NewValidationError("experience id is required")
	}
	if !s.Loaded() {
		if err := s.Load(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("experience_id", id).Msg("bookmarks not loaded, toggle skipped")
			return false, err
		}
	}

	s.mu.Lock()
	next, added := toggled(s.ids, id)
	s.mu.Unlock()

	if err := s.store.ReplaceBookmarks(ctx, s.principal.UserID(), next); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("experience_id", id).Msg("Error updating bookmarks")
		return s.Has(id), fmt.Errorf("toggle bookmark %s: %w", id, err)
	}

	s.mu.Lock()
	s.ids = next
	s.mu.Unlock()
	return added, nil
}

// Has reports whether id is bookmarked locally
func (s *Synchronizer) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.ids, id) >= 0
}

// IDs returns a copy of the local set in insertion order
func (s *Synchronizer) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.ids...)
}

func toggled(current []string, id string) ([]string, bool) {
	if i := indexOf(current, id); i >= 0 {
		next := make([]string, 0, len(current)-1)
		next = append(next, current[:i]...)
		return append(next, current[i+1:]...), false
	}
	next := make([]string, 0, len(current)+1)
	next = append(next, current...)
	return append(next, id), true
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if indexOf(out, id) < 0 {
			out = append(out, id)
		}
	}
	return out
}
