package trips

import (
	"context"
	"fmt"
	"time"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/models"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// Filter narrows the experiences offered when assembling a trip
type Filter string

const (
	FilterAll        Filter = "all"
	FilterMine       Filter = "mine"
	FilterBookmarked Filter = "bookmarked"
)

// Store is the slice of the gateway trips need
type Store interface {
	CreateTrip(ctx context.Context, trip models.Trip) error
	GetTrip(ctx context.Context, id string) (*models.Trip, []models.Experience, error)
	ListExperiences(ctx context.Context) ([]models.Experience, error)
	UserBundle(ctx context.Context, userID string) (owned, bookmarked []models.Experience, err error)
}

// Principal identifies who is acting
type Principal interface {
	IsAuthenticated() bool
	UserID() string
}

// Detail is a trip together with its experiences
type Detail struct {
	Trip        models.Trip         `json:"trip"`
	Experiences []models.Experience `json:"experiences"`
}

// Service creates and loads trips
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a Service
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Create submits a validated draft
func (s *Service) Create(ctx context.Context, p Principal, d Draft) (models.Trip, error) {
	if !p.IsAuthenticated() {
		return models.Trip{}, apperrors.NewUnauthorizedError("You must be signed in to add a trip.")
	}
	if err := d.Validate(); err != nil {
		return models.Trip{}, err
	}
	trip := d.Trip(p.UserID(), utils.FormatDate(s.now()))
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		return models.Trip{}, fmt.Errorf("create trip: %w", err)
	}
	return trip, nil
}

// Get loads one trip of the signed-in user. Trips of other users answer
// not found.
func (s *Service) Get(ctx context.Context, p Principal, id string) (*Detail, error) {
	if !p.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("You must be signed in to view trips.")
	}
	trip, experiences, err := s.store.GetTrip(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", id, err)
	}
	if trip == nil || !trip.OwnedBy(p.UserID()) {
		return nil, apperrors.NewNotFoundError("Trip not found")
	}
	if experiences == nil {
		experiences = []models.Experience{}
	}
	return &Detail{Trip: *trip, Experiences: experiences}, nil
}

// Candidates lists the experiences that can be attached under filter
func (s *Service) Candidates(ctx context.Context, p Principal, filter Filter) ([]models.Experience, error) {
	switch filter {
	case FilterAll, "":
		return s.store.ListExperiences(ctx)
	case FilterMine, FilterBookmarked:
		if !p.IsAuthenticated() {
			return nil, apperrors.NewUnauthorizedError("You must be signed in to filter your experiences.")
		}
		owned, bookmarked, err := s.store.UserBundle(ctx, p.UserID())
		if err != nil {
			return nil, fmt.Errorf("load user experiences: %w", err)
		}
		if filter == FilterMine {
			return owned, nil
		}
		return bookmarked, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown filter %q", filter))
	}
}
