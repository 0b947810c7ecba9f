package experiences

import (
	"context"
	"fmt"
	"strings"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/models"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// MaxPhotoSize is the largest photo file accepted, in bytes
const MaxPhotoSize = 1 << 20

// MaxRating is the number of stars on the review form
const MaxRating = 5

// Submission is the "share your experience" form
type Submission struct {
	Title       string
	EventDate   string
	Description string
	Location    string
}

// Validate checks that every field is filled and the date is a calendar date
func (s Submission) Validate() error {
	required := []struct{ name, value string }{
		{"title", s.Title},
		{"eventDate", s.EventDate},
		{"description", s.Description},
		{"location", s.Location},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("%s is required", f.name))
		}
	}
	if _, err := utils.ParseDate(s.EventDate); err != nil {
		return apperrors.NewValidationError("eventDate must be YYYY-MM-DD")
	}
	return nil
}

// Review is a comment and star rating left on an experience
type Review struct {
	Text   string
	Rating int
}

// Validate requires a picked star and some text
func (r Review) Validate() error {
	if r.Rating < 1 || r.Rating > MaxRating {
		return apperrors.NewValidationError(fmt.Sprintf("Please select a rating between 1 and %d stars.", MaxRating))
	}
	if strings.TrimSpace(r.Text) == "" {
		return apperrors.NewValidationError("Please write a review.")
	}
	return nil
}

// Create shares a new experience owned by the signed-in user. The API
// service assigns the id, so the returned experience has none.
func (s *Service) Create(ctx context.Context, p Principal, sub Submission) (models.Experience, error) {
	if !p.IsAuthenticated() {
		return models.Experience{}, apperrors.NewUnauthorizedError("You must be signed in to share an experience.")
	}
	if err := sub.Validate(); err != nil {
		return models.Experience{}, err
	}

	req := dto.ExperienceCreateRequest{
		Title:        strings.TrimSpace(sub.Title),
		EventDate:    sub.EventDate,
		CreationDate: utils.FormatDate(s.now()),
		Description:  sub.Description,
		Location:     strings.TrimSpace(sub.Location),
		Rating:       models.Rating{},
		User:         []string{p.UserID()},
	}
	if err := s.store.CreateExperience(ctx, req); err != nil {
		return models.Experience{}, fmt.Errorf("create experience: %w", err)
	}
	logging.FromContext(ctx).Info().Str("user_id", p.UserID()).Str("title", req.Title).Msg("experience created")

	rating := req.Rating
	return models.Experience{
		Title:        req.Title,
		EventDate:    req.EventDate,
		CreationDate: req.CreationDate,
		Description:  req.Description,
		Location:     req.Location,
		User:         req.User,
		Rating:       &rating,
	}, nil
}

// AddReview posts a review of experience id, dated today
func (s *Service) AddReview(ctx context.Context, p Principal, id string, review Review) (models.Comment, error) {
	if !p.IsAuthenticated() {
		return models.Comment{}, apperrors.NewUnauthorizedError("You must be signed in to write a review.")
	}
	if strings.TrimSpace(id) == "" {
		return models.Comment{}, apperrors.NewValidationError("experience id is required")
	}
	if err := review.Validate(); err != nil {
		return models.Comment{}, err
	}

	req := dto.CommentCreateRequest{
		CommentDate: utils.FormatDate(s.now()),
		Comment:     strings.TrimSpace(review.Text),
		Rating:      review.Rating,
		User:        []string{p.UserID()},
		Experience:  []string{id},
	}
	if err := s.store.AddComment(ctx, req); err != nil {
		return models.Comment{}, fmt.Errorf("add review to %s: %w", id, err)
	}
	return models.Comment{
		Authors: req.User,
		Text:    req.Comment,
		Date:    req.CommentDate,
		Rating:  float64(req.Rating),
	}, nil
}

// UploadPhotos attaches files to experience id. Any file over MaxPhotoSize
// rejects the whole batch before anything is sent.
func (s *Service) UploadPhotos(ctx context.Context, p Principal, id string, files []models.PhotoUpload) error {
	if !p.IsAuthenticated() {
		return apperrors.NewUnauthorizedError("You must be signed in to add photos.")
	}
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("experience id is required")
	}
	if len(files) == 0 {
		return apperrors.NewValidationError("Please select at least one file to upload.")
	}
	for _, f := range files {
		if len(f.Data) > MaxPhotoSize {
			return apperrors.NewValidationError("One or more files exceed the 1MB size limit.")
		}
		if len(f.Data) == 0 {
			return apperrors.NewValidationError(fmt.Sprintf("%s is empty", f.Filename))
		}
	}

	if err := s.store.UploadPhotos(ctx, id, files); err != nil {
		return fmt.Errorf("upload photos to %s: %w", id, err)
	}
	logging.FromContext(ctx).Info().Str("experience_id", id).Int("files", len(files)).Msg("photos uploaded")
	return nil
}
