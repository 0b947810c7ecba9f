package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/experiences"
	"TRAVELSHARE_CLIENT/internal/models"
	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// maxPhotosPerUpload bounds one multipart upload request
const maxPhotosPerUpload = 10

// ExperiencesHandler serves browse, detail, sharing and edit of experiences
type ExperiencesHandler struct {
	svc *experiences.Service
}

// NewExperiencesHandler creates a new ExperiencesHandler
func NewExperiencesHandler(svc *experiences.Service) *ExperiencesHandler {
	return &ExperiencesHandler{svc: svc}
}

// Experiences dispatches by HTTP method and path for /api/experiences
func (h *ExperiencesHandler) Experiences(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/experiences"), "/")
	switch {
	case rest == "" && r.Method == http.MethodPost:
		h.CreateExperience(w, r)
	case rest == "":
		h.ListExperiences(w, r)
	case strings.HasSuffix(rest, "/photos") && r.Method == http.MethodPost:
		h.UploadPhotos(w, r)
	case strings.HasSuffix(rest, "/photos"):
		h.RemovePhoto(w, r)
	case strings.HasSuffix(rest, "/reviews"):
		h.AddReview(w, r)
	case r.Method == http.MethodGet:
		h.ExperienceDetail(w, r)
	case r.Method == http.MethodPut || r.Method == http.MethodPatch:
		h.EditExperience(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ListExperiences handles GET /api/experiences
// @Summary List experiences
// @Tags experiences
// @Produce json
// @Success 200 {array} models.Experience
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/experiences [get]
func (h *ExperiencesHandler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	list, err := h.svc.List(r.Context())
	if err != nil {
		fail(w, s, session.NoticeExperienceFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, list)
}

// ExperienceDetail handles GET /api/experiences/{id}
// @Summary Experience detail
// @Description The experience with bookmark and ownership flags for the caller
// @Tags experiences
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Success 200 {object} experiences.Detail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/experiences/{id} [get]
func (h *ExperiencesHandler) ExperienceDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/experiences/"), "/")
	detail, err := h.svc.Detail(r.Context(), s, s.Bookmarks, id)
	if err != nil {
		fail(w, s, session.NoticeExperienceFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, detail)
}

// EditExperience handles PUT /api/experiences/{id}
// @Summary Edit an experience
// @Description Sends only the fields that changed. Omitted fields are left as they are. An unchanged form is rejected without calling the API service.
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Param payload body dto.ExperienceEditRequest true "Edited fields"
// @Success 200 {object} models.Experience
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/experiences/{id} [put]
func (h *ExperiencesHandler) EditExperience(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.ExperienceEditRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/experiences/"), "/")
	updated, err := h.svc.Edit(r.Context(), s, id, experiences.Edit{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
	})
	if errors.Is(err, experiences.ErrNoChanges) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "No changes", err.Error())
		return
	}
	if err != nil {
		fail(w, s, session.NoticeExperienceFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, updated)
}

// RemovePhoto handles DELETE /api/experiences/{id}/photos
// @Summary Remove a photo
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Param payload body dto.PhotoDeleteRequest true "Photo to remove"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/experiences/{id}/photos [delete]
func (h *ExperiencesHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.PhotoDeleteRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/experiences/"), "/")
	id := strings.TrimSuffix(path, "/photos")
	if err := h.svc.RemovePhoto(r.Context(), s, id, req.PhotoURL); err != nil {
		fail(w, s, session.NoticeExperienceFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Photo removed"})
}

// CreateExperience handles POST /api/experiences
// @Summary Share an experience
// @Description Every field is required; eventDate is YYYY-MM-DD. The creation date is today and the rating starts empty.
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ExperienceSubmitRequest true "New experience"
// @Success 201 {object} models.Experience
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/experiences [post]
func (h *ExperiencesHandler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.ExperienceSubmitRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	exp, err := h.svc.Create(r.Context(), s, experiences.Submission{
		Title:       req.Title,
		EventDate:   req.EventDate,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		fail(w, s, session.NoticeExperienceFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, exp)
}

// AddReview handles POST /api/experiences/{id}/reviews
// @Summary Review an experience
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Param payload body dto.ReviewRequest true "Rating (1-5) and comment"
// @Success 201 {object} models.Comment
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/experiences/{id}/reviews [post]
func (h *ExperiencesHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/experiences/"), "/")
	id := strings.TrimSuffix(path, "/reviews")
	comment, err := h.svc.AddReview(r.Context(), s, id, experiences.Review{Text: req.Comment, Rating: req.Rating})
	if err != nil {
		fail(w, s, session.NoticeExperienceFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, comment)
}

// UploadPhotos handles POST /api/experiences/{id}/photos
// @Summary Add photos
// @Description Multipart form with one or more "file" parts, each at most 1MB.
// @Tags experiences
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Experience ID"
// @Param file formData file true "Photo"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/experiences/{id}/photos [post]
func (h *ExperiencesHandler) UploadPhotos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	if !s.IsAuthenticated() {
		utils.WriteAppError(w, apperrors.NewUnauthorizedError("You must be signed in to add photos."))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotosPerUpload*(experiences.MaxPhotoSize+64<<10))
	if err := r.ParseMultipartForm(experiences.MaxPhotoSize); err != nil {
		utils.WriteAppError(w, apperrors.NewValidationError("invalid photo upload: "+err.Error()))
		return
	}
	defer r.MultipartForm.RemoveAll()
	headers := r.MultipartForm.File["file"]
	if len(headers) > maxPhotosPerUpload {
		utils.WriteAppError(w, apperrors.NewValidationError(fmt.Sprintf("at most %d photos per upload", maxPhotosPerUpload)))
		return
	}

	files := make([]models.PhotoUpload, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > experiences.MaxPhotoSize {
			utils.WriteAppError(w, apperrors.NewValidationError("One or more files exceed the 1MB size limit."))
			return
		}
		f, err := fh.Open()
		if err != nil {
			utils.WriteAppError(w, apperrors.NewValidationError("unreadable photo "+fh.Filename))
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			utils.WriteAppError(w, apperrors.NewValidationError("unreadable photo "+fh.Filename))
			return
		}
		files = append(files, models.PhotoUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/experiences/"), "/")
	id := strings.TrimSuffix(path, "/photos")
	if err := h.svc.UploadPhotos(r.Context(), s, id, files); err != nil {
		fail(w, s, session.NoticeExperienceFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.MessageResponse{Message: fmt.Sprintf("%d photos uploaded", len(files))})
}
