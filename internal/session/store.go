package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"TRAVELSHARE_CLIENT/internal/models"
)

// ErrNotFound is returned for unknown or expired sessions
var ErrNotFound = errors.New("session not found")

// Record is the persisted part of a session; component state is rebuilt from it
type Record struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id,omitempty"`
	Identity  models.Identity `json:"identity"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Authenticated reports whether the record belongs to a signed-in user
func (r Record) Authenticated() bool { return r.UserID != "" }

// Store persists session records
type Store interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
}

// Pruner is implemented by stores that do not expire records on their own.
// RedisStore relies on key TTLs instead.
type Pruner interface {
	PruneExpired(now time.Time) int
}

// MemoryStore keeps records in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record), now: time.Now}
}

func (s *MemoryStore) Save(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return Record{}, ErrNotFound
	}
	if !rec.ExpiresAt.IsZero() && s.now().After(rec.ExpiresAt) {
		_ = s.Delete(ctx, id)
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// PruneExpired deletes every record that expired before now
func (s *MemoryStore) PruneExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id, rec := range s.records {
		if !rec.ExpiresAt.IsZero() && now.After(rec.ExpiresAt) {
			delete(s.records, id)
			pruned++
		}
	}
	return pruned
}

// Len returns how many records are held
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
