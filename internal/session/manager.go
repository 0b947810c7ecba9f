package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/models"
)

// Token is a signed session token and its expiry
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Manager creates, resolves and ends sessions
type Manager struct {
	gw     Gateway
	store  Store
	tokens *Tokens
	ttl    time.Duration
	now    func() time.Time

	mu   sync.Mutex
	live map[string]*Session
}

// NewManager creates a Manager
func NewManager(gw Gateway, store Store, tokens *Tokens, ttl time.Duration) *Manager {
	return &Manager{
		gw:     gw,
		store:  store,
		tokens: tokens,
		ttl:    ttl,
		now:    time.Now,
		live:   make(map[string]*Session),
	}
}

// Begin signs identity in: the API service assigns the stable user id and
// the bookmark mirror is loaded before the session is handed out
func (m *Manager) Begin(ctx context.Context, identity models.Identity) (*Session, Token, error) {
	if strings.TrimSpace(identity.Subject) == "" {
		return nil, Token{}, apperrors.NewValidationError("identity subject is required")
	}
	userID, err := m.gw.SyncUser(ctx, identity)
	if err != nil {
		return nil, Token{}, fmt.Errorf("sync user: %w", err)
	}

	s, tok, err := m.create(ctx, userID, identity)
	if err != nil {
		return nil, Token{}, err
	}

	if err := s.Bookmarks.Load(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("session_id", s.ID()).Msg("initial bookmark load failed")
		s.Notices.Push(NoticeBookmarkFailed, err)
	}

	logging.FromContext(ctx).Info().Str("session_id", s.ID()).Str("user_id", userID).Msg("session started")
	return s, tok, nil
}

// Guest creates an anonymous session; search and browse work, everything
// else answers unauthorized
func (m *Manager) Guest(ctx context.Context) (*Session, Token, error) {
	return m.create(ctx, "", models.Identity{})
}

// Resume resolves a token to its session, rebuilding component state
// from the store when the process does not hold it
func (m *Manager) Resume(ctx context.Context, token string) (*Session, error) {
	claims, err := m.tokens.Validate(token)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid session token")
	}

	m.mu.Lock()
	s, ok := m.live[claims.SessionID]
	m.mu.Unlock()
	if ok {
		return s, nil
	}

	rec, err := m.store.Load(ctx, claims.SessionID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperrors.NewUnauthorizedError("session expired")
	}
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if s, ok := m.live[rec.ID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	s = newSession(rec, m.gw)
	m.live[rec.ID] = s
	m.mu.Unlock()

	// a failed reload leaves the mirror unloaded; the next toggle retries it
	if s.IsAuthenticated() {
		if err := s.Bookmarks.Load(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("session_id", s.ID()).Msg("bookmark reload on resume failed")
			s.Notices.Push(NoticeBookmarkFailed, err)
		}
	}
	logging.FromContext(ctx).Debug().Str("session_id", s.ID()).Msg("session rebuilt from store")
	return s, nil
}

// End destroys the session; its components are dropped with it
func (m *Manager) End(ctx context.Context, id string) error {
	m.mu.Lock()
	delete(m.live, id)
	m.mu.Unlock()

	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	logging.FromContext(ctx).Info().Str("session_id", id).Msg("session ended")
	return nil
}

func (m *Manager) create(ctx context.Context, userID string, identity models.Identity) (*Session, Token, error) {
	now := m.now()
	rec := Record{
		ID:        uuid.NewString(),
		UserID:    userID,
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, rec); err != nil {
		return nil, Token{}, fmt.Errorf("save session: %w", err)
	}

	value, expiresAt, err := m.tokens.Issue(rec.ID, now)
	if err != nil {
		return nil, Token{}, fmt.Errorf("issue token: %w", err)
	}

	s := newSession(rec, m.gw)
	m.mu.Lock()
	m.live[rec.ID] = s
	m.mu.Unlock()
	return s, Token{Value: value, ExpiresAt: expiresAt}, nil
}

// Sweep drops expired sessions held in memory and, when the store keeps
// records in process, their records too. It returns how many of each went.
func (m *Manager) Sweep() (live, stored int) {
	now := m.now()
	m.mu.Lock()
	for id, s := range m.live {
		if now.After(s.record.ExpiresAt) {
			delete(m.live, id)
			live++
		}
	}
	m.mu.Unlock()

	if p, ok := m.store.(Pruner); ok {
		stored = p.PruneExpired(now)
	}
	return live, stored
}

// RunSweeper calls Sweep every interval until ctx is done
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if live, stored := m.Sweep(); live > 0 || stored > 0 {
				logging.FromContext(ctx).Debug().Int("live", live).Int("stored", stored).Msg("expired sessions swept")
			}
		}
	}
}
