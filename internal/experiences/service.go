package experiences

import (
	"context"
	"fmt"
	"strings"
	"time"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/models"
)

// Store is the slice of the gateway experiences need
type Store interface {
	ListExperiences(ctx context.Context) ([]models.Experience, error)
	GetExperience(ctx context.Context, id string) (*models.Experience, error)
	UpdateExperience(ctx context.Context, patch map[string]any) error
	RemovePhoto(ctx context.Context, experienceID, photoURL string) error
	CreateExperience(ctx context.Context, req dto.ExperienceCreateRequest) error
	AddComment(ctx context.Context, req dto.CommentCreateRequest) error
	UploadPhotos(ctx context.Context, experienceID string, files []models.PhotoUpload) error
}

// Principal identifies who is acting
type Principal interface {
	IsAuthenticated() bool
	UserID() string
}

// Bookmarks reports whether an experience is bookmarked in the session
type Bookmarks interface {
	Has(id string) bool
}

// Detail is an experience as shown on its own page
type Detail struct {
	Experience models.Experience `json:"experience"`
	Bookmarked bool              `json:"bookmarked"`
	Owned      bool              `json:"owned"`
}

// Service browses, creates and edits experiences
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a Service
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// List returns every experience
func (s *Service) List(ctx context.Context) ([]models.Experience, error) {
	list, err := s.store.ListExperiences(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return list, nil
}

// Detail loads one experience and flags it against the session state
func (s *Service) Detail(ctx context.Context, p Principal, marks Bookmarks, id string) (*Detail, error) {
	exp, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &Detail{Experience: *exp}
	if p.IsAuthenticated() {
		d.Owned = exp.OwnedBy(p.UserID())
		if marks != nil {
			d.Bookmarked = marks.Has(exp.ID)
		}
	}
	return d, nil
}

// Edit sends only the fields that differ; only owners may edit
func (s *Service) Edit(ctx context.Context, p Principal, id string, edited Edit) (models.Experience, error) {
	if !p.IsAuthenticated() {
		return models.Experience{}, apperrors.NewUnauthorizedError("You must be signed in to edit an experience.")
	}
	original, err := s.load(ctx, id)
	if err != nil {
		return models.Experience{}, err
	}
	if !original.OwnedBy(p.UserID()) {
		return models.Experience{}, apperrors.NewUnauthorizedError("Only the owner can edit this experience.")
	}
	patch, err := Diff(*original, edited)
	if err != nil {
		return *original, err
	}
	if err := s.store.UpdateExperience(ctx, patch); err != nil {
		return *original, fmt.Errorf("update experience %s: %w", id, err)
	}
	logging.FromContext(ctx).Info().Str("experience_id", id).Int("fields", len(patch)-1).Msg("experience updated")
	return Apply(*original, patch), nil
}

// RemovePhoto detaches photoURL from an owned experience
func (s *Service) RemovePhoto(ctx context.Context, p Principal, id, photoURL string) error {
	if !p.IsAuthenticated() {
		return apperrors.NewUnauthorizedError("You must be signed in to remove photos.")
	}
	if strings.TrimSpace(photoURL) == "" {
		return apperrors.NewValidationError("photo_url is required")
	}
	original, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !original.OwnedBy(p.UserID()) {
		return apperrors.NewUnauthorizedError("Only the owner can remove photos.")
	}
	if err := s.store.RemovePhoto(ctx, id, photoURL); err != nil {
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id string) (*models.Experience, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("experience id is required")
	}
	exp, err := s.store.GetExperience(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get experience %s: %w", id, err)
	}
	if exp == nil {
		return nil, apperrors.NewNotFoundError("experience not found")
	}
	return exp, nil
}
