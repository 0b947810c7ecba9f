package handlers

import (
	"net/http"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// BookmarksHandler serves the session's bookmark set
type BookmarksHandler struct{}

// NewBookmarksHandler creates a new BookmarksHandler
func NewBookmarksHandler() *BookmarksHandler {
	return &BookmarksHandler{}
}

// ListBookmarks handles GET /api/bookmarks
// @Summary List bookmarks
// @Description Bookmarked experience ids; ?reload=true re-reads them from the API service
// @Tags bookmarks
// @Produce json
// @Security BearerAuth
// @Param reload query bool false "Reload from the API service"
// @Success 200 {object} dto.BookmarksResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/bookmarks [get]
func (h *BookmarksHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}
	if !s.IsAuthenticated() {
		utils.WriteAppError(w, apperrors.NewUnauthorizedError("You must be signed in to see bookmarks."))
		return
	}

	if r.URL.Query().Get("reload") == "true" || !s.Bookmarks.Loaded() {
		if err := s.Bookmarks.Load(r.Context()); err != nil {
			fail(w, s, session.NoticeBookmarkFailed, err)
			return
		}
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.BookmarksResponse{Bookmarks: s.Bookmarks.IDs()})
}

// ToggleBookmark handles POST /api/bookmarks/toggle
// @Summary Toggle a bookmark
// @Description Adds or removes one experience and overwrites the whole remote set. Local state changes only after the API service accepts.
// @Tags bookmarks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookmarkToggleRequest true "Experience"
// @Success 200 {object} dto.BookmarkToggleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/bookmarks/toggle [post]
func (h *BookmarksHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.BookmarkToggleRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	bookmarked, err := s.Bookmarks.Toggle(r.Context(), req.ExperienceID)
	if err != nil {
		logging.FromContext(r.Context()).Warn().Err(err).Str("experience_id", req.ExperienceID).Msg("bookmark toggle failed")
		fail(w, s, session.NoticeBookmarkFailed, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.BookmarkToggleResponse{
		ExperienceID: req.ExperienceID,
		Bookmarked:   bookmarked,
		Bookmarks:    s.Bookmarks.IDs(),
	})
}
