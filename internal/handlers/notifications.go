package handlers

import (
	"net/http"

	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// NotificationsHandler: HTTP endpoints (list/mark read/mark all read)
// over the session's notice feed
type NotificationsHandler struct{}

// NewNotificationsHandler creates a new NotificationsHandler
func NewNotificationsHandler() *NotificationsHandler {
	return &NotificationsHandler{}
}

// ListNotifications handles GET /api/notifications
// @Summary List notices
// @Description Failures raised by earlier requests in this session, newest first.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread_only query bool false "true|false (default false)"
// @Success 200 {object} dto.NoticeListResponse
// @Router /api/notifications [get]
func (h *NotificationsHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	unreadOnly := r.URL.Query().Get("unread_only") == "true"
	utils.WriteJSONResponse(w, http.StatusOK, dto.NoticeListResponse{
		Notices:     s.Notices.List(unreadOnly),
		UnreadCount: s.Notices.UnreadCount(),
	})
}

// MarkRead handles POST /api/notifications/read
// @Summary Mark a notice read
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NoticeReadRequest true "Notice"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/notifications/read [post]
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.NoticeReadRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	if !s.Notices.MarkRead(req.ID) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Notice not found")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Marked as read"})
}

// MarkAllRead handles POST /api/notifications/read-all
// @Summary Mark all notices read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Router /api/notifications/read-all [post]
func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]int{"updated": s.Notices.MarkAllRead()})
}
