package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"TRAVELSHARE_CLIENT/internal/apperrors"
)

// NoticeType names what the notice is about
type NoticeType string

const (
	NoticeSearchFailed         NoticeType = "search_failed"
	NoticeBookmarkFailed       NoticeType = "bookmark_failed"
	NoticeDashboardFailed      NoticeType = "dashboard_failed"
	NoticeRecommendationFailed NoticeType = "recommendation_failed"
	NoticeExperienceFailed     NoticeType = "experience_failed"
	NoticeTripFailed           NoticeType = "trip_failed"
)

const maxNotices = 50

// Notice is a non-blocking message shown to the user after a failure
type Notice struct {
	ID        string              `json:"id"`
	Type      NoticeType          `json:"type"`
	Kind      apperrors.ErrorType `json:"kind,omitempty"`
	Message   string              `json:"message"`
	Read      bool                `json:"is_read"`
	CreatedAt time.Time           `json:"created_at"`
}

// Notices is a bounded, newest-first feed of notices
type Notices struct {
	mu    sync.Mutex
	items []Notice
	now   func() time.Time
}

func newNotices() *Notices {
	return &Notices{now: time.Now}
}

// Push records a notice for err; nil errors are ignored
func (n *Notices) Push(t NoticeType, err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}
	notice := Notice{
		ID:        uuid.NewString(),
		Type:      t,
		Kind:      apperrors.TypeOf(err),
		Message:   msg,
		CreatedAt: n.now(),
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append([]Notice{notice}, n.items...)
	if len(n.items) > maxNotices {
		n.items = n.items[:maxNotices]
	}
}

// List returns a copy of the feed
func (n *Notices) List(unreadOnly bool) []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notice, 0, len(n.items))
	for _, item := range n.items {
		if unreadOnly && item.Read {
			continue
		}
		out = append(out, item)
	}
	return out
}

// UnreadCount counts notices not yet marked read
func (n *Notices) UnreadCount() int {
	return len(n.List(true))
}

// MarkRead marks the given notice read; it reports whether it existed
func (n *Notices) MarkRead(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead marks every notice read and returns how many changed
func (n *Notices) MarkAllRead() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	changed := 0
	for i := range n.items {
		if !n.items[i].Read {
			n.items[i].Read = true
			changed++
		}
	}
	return changed
}
