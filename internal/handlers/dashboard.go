package handlers

import (
	"net/http"
	"strings"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/utils"
	"TRAVELSHARE_CLIENT/internal/viewstate"
)

// DashboardHandler serves the experiences, trips and bookmarks sections
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Dashboard dispatches /api/dashboard and its sub-paths
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/dashboard"), "/")
	switch {
	case rest == "":
		h.Snapshot(w, r)
	case rest == "refresh":
		h.Refresh(w, r)
	default:
		h.SelectControl(w, r)
	}
}

// Snapshot handles GET /api/dashboard
// @Summary Dashboard view-state
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := signedInSession(w, r)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.DashboardResponse{Collections: s.Dashboard.View().Snapshots()})
}

// Refresh handles POST /api/dashboard/refresh
// @Summary Refresh the dashboard
// @Description Fetches the user's experiences, bookmarks and trips together. A failure leaves every section as it was.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	if err := s.Dashboard.Refresh(r.Context()); err != nil {
		fail(w, s, session.NoticeDashboardFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.DashboardResponse{Collections: s.Dashboard.View().Snapshots()})
}

// SelectControl handles POST /api/dashboard/{collection}/{control}
// @Summary Select a section control
// @Description control is one of default, az or list
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param collection path string true "experiences | trips | bookmarks"
// @Param control path string true "default | az | list"
// @Success 200 {object} viewstate.State
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/dashboard/{collection}/{control} [post]
func (h *DashboardHandler) SelectControl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := signedInSession(w, r)
	if !ok {
		return
	}

	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/dashboard/"), "/"), "/")
	if len(parts) != 2 {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Expected /api/dashboard/{collection}/{control}")
		return
	}
	kind, err := viewstate.ParseKind(parts[0])
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}
	ctl, err := viewstate.ParseControl(parts[1])
	if err != nil {
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, s.Dashboard.View().Select(kind, ctl))
}

func signedInSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := currentSession(w, r)
	if !ok {
		return nil, false
	}
	if !s.IsAuthenticated() {
		utils.WriteAppError(w, apperrors.NewUnauthorizedError("You must be signed in to see your dashboard."))
		return nil, false
	}
	return s, true
}
