package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/models"
	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// SessionManager starts and ends signed-in sessions
type SessionManager interface {
	Begin(ctx context.Context, identity models.Identity) (*session.Session, session.Token, error)
	End(ctx context.Context, id string) error
}

// AuthHandler handles session lifecycle requests
type AuthHandler struct {
	sessions SessionManager
	devLogin bool
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(sessions SessionManager, devLogin bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, devLogin: devLogin}
}

// DevLogin signs in without the identity provider
// @Summary Development login
// @Description Start a signed-in session for a made-up identity. Enabled only with AUTH_DEV_LOGIN=true.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.DevLoginRequest true "Identity"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/auth/dev-login [post]
func (h *AuthHandler) DevLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.devLogin {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Development login is disabled")
		return
	}

	var req dto.DevLoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Email) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "sub and email are required")
		return
	}

	s, tok, err := h.sessions.Begin(r.Context(), models.Identity{
		Subject:  req.Subject,
		Email:    req.Email,
		Name:     req.Name,
		Verified: true,
	})
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("dev login failed")
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, sessionResponse(s, tok))
}

// Logout ends the caller's session
// @Summary Logout
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	if err := h.sessions.End(r.Context(), s.ID()); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("logout failed")
		utils.WriteAppError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Signed out"})
}

// Session describes the caller's session
// @Summary Current session
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, sessionResponse(s, session.Token{}))
}

func sessionResponse(s *session.Session, tok session.Token) dto.SessionResponse {
	identity := s.Identity()
	expires := s.Record().ExpiresAt
	if !tok.ExpiresAt.IsZero() {
		expires = tok.ExpiresAt
	}
	return dto.SessionResponse{
		Token:           tok.Value,
		SessionID:       s.ID(),
		IsAuthenticated: s.IsAuthenticated(),
		UserID:          s.UserID(),
		Email:           identity.Email,
		Name:            identity.Name,
		Picture:         identity.Picture,
		ExpiresAt:       expires.UTC().Format(time.RFC3339),
	}
}
