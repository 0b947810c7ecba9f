package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/search"
	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// SearchHandler serves the dual-mode search box
type SearchHandler struct{}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

// Search runs one keystroke-triggered query
// @Summary Incremental search
// @Description Query the active mode; mode may be omitted. A mode other than the active one is rejected with 400. Failures leave the previous suggestions in place and carry a notice.
// @Tags search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SearchQueryRequest true "Mode and query"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/search [post]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.SearchQueryRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	mode := s.Search.Active()
	if req.Mode != "" {
		var err error
		if mode, err = search.ParseMode(req.Mode); err != nil {
			utils.WriteAppError(w, err)
			return
		}
	}

	outcome, err := s.Search.Search(r.Context(), mode, req.Query)
	if apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		utils.WriteAppError(w, err)
		return
	}
	resp := dto.SearchResponse{Outcome: outcome}
	if err != nil {
		logging.FromContext(r.Context()).Warn().Err(err).Str("mode", string(mode)).Msg("search failed")
		s.Notices.Push(session.NoticeSearchFailed, err)
		msg := noticeMessage(err)
		resp.Notice = &msg
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

// SwitchMode changes the active mode and hides both suggestion lists
// @Summary Switch search mode
// @Tags search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SearchModeRequest true "Mode"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/search/mode [post]
func (h *SearchHandler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.SearchModeRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	mode, err := search.ParseMode(req.Mode)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	s.Search.SwitchMode(mode)
	utils.WriteJSONResponse(w, http.StatusOK, dto.SearchResponse{Outcome: s.Search.Current()})
}

// Select resolves a chosen suggestion into a navigation target
// @Summary Resolve a suggestion
// @Tags search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SearchSelectRequest true "Mode and label"
// @Success 200 {object} dto.SearchSelectResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/search/select [post]
func (h *SearchHandler) Select(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.SearchSelectRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	mode, err := search.ParseMode(req.Mode)
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	switch mode {
	case search.ModeLocation:
		loc, found := s.Search.ResolveLocation(req.Label)
		if !found {
			utils.WriteAppError(w, apperrors.NewNotFoundError("location is not among the current suggestions"))
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, dto.SearchSelectResponse{
			Kind:   "location",
			Target: loc,
			Path:   "/location/" + url.PathEscape(loc),
		})
	default:
		id, found := s.Search.ResolveTitle(req.Label)
		if !found {
			utils.WriteAppError(w, apperrors.NewNotFoundError("title is not among the current suggestions"))
			return
		}
		utils.WriteJSONResponse(w, http.StatusOK, dto.SearchSelectResponse{
			Kind:   "experience",
			Target: id,
			Path:   "/experience/" + url.PathEscape(id),
		})
	}
}

// Browse lists the experiences of one location bucket
// @Summary Browse a location
// @Tags search
// @Produce json
// @Security BearerAuth
// @Param location query string true "Location string"
// @Success 200 {array} models.Experience
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/browse [get]
func (h *SearchHandler) Browse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	list, err := s.Search.Browse(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		fail(w, s, session.NoticeSearchFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, list)
}

func noticeMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
