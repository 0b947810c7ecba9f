package handlers

import (
	"net/http"

	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// currentSession returns the session attached by SessionMiddleware
func currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "No session")
		return nil, false
	}
	return s, true
}

// fail records a notice on the session and answers with the mapped status
func fail(w http.ResponseWriter, s *session.Session, t session.NoticeType, err error) {
	s.Notices.Push(t, err)
	utils.WriteAppError(w, err)
}
