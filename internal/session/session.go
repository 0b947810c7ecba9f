// Package session owns the per-user state the browser UI works against.
// A Session is created on sign-in (or as a guest), resolved from the
// bearer token on every request and destroyed on logout.
package session

import (
	"context"

	"TRAVELSHARE_CLIENT/internal/bookmarks"
	"TRAVELSHARE_CLIENT/internal/models"
	"TRAVELSHARE_CLIENT/internal/search"
	"TRAVELSHARE_CLIENT/internal/viewstate"
)

// Gateway is everything a session's components need from the API service
type Gateway interface {
	search.Searcher
	bookmarks.Store
	viewstate.Source
	SyncUser(ctx context.Context, identity models.Identity) (string, error)
}

// Session is one browser's state: the search resolver, the bookmark mirror,
// the collection view-state and its notice feed
type Session struct {
	record    Record
	Search    *search.Resolver
	Bookmarks *bookmarks.Synchronizer
	Dashboard *viewstate.Dashboard
	Notices   *Notices
}

func newSession(rec Record, gw Gateway) *Session {
	s := &Session{record: rec, Notices: newNotices()}
	s.Search = search.NewResolver(gw)
	s.Bookmarks = bookmarks.NewSynchronizer(gw, s)
	s.Dashboard = viewstate.NewDashboard(gw, s, viewstate.NewController())
	return s
}

// ID returns the session id
func (s *Session) ID() string { return s.record.ID }

// Record returns the persisted form of the session
func (s *Session) Record() Record { return s.record }

// Identity returns who signed in, zero for guests
func (s *Session) Identity() models.Identity { return s.record.Identity }

// IsAuthenticated reports whether a user is signed in
func (s *Session) IsAuthenticated() bool { return s.record.Authenticated() }

// UserID returns the stable user id assigned by the API service
func (s *Session) UserID() string { return s.record.UserID }

type ctxKey struct{}

// WithContext returns ctx carrying s
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached by the session middleware
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s != nil
}
