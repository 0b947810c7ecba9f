package middleware

import (
	"context"
	"net/http"
	"strings"

	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// SessionTokenHeader carries a freshly issued guest token back to the browser
const SessionTokenHeader = "X-Session-Token"

// Sessions is what the middleware needs from the session manager
type Sessions interface {
	Resume(ctx context.Context, token string) (*session.Session, error)
	Guest(ctx context.Context) (*session.Session, session.Token, error)
}

// SessionMiddleware resolves the bearer token to a session and puts it in
// the request context. Requests without a token get a guest session whose
// token is returned in the X-Session-Token header.
func SessionMiddleware(next http.HandlerFunc, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			s, tok, err := sessions.Guest(r.Context())
			if err != nil {
				logging.FromContext(r.Context()).Error().Err(err).Msg("guest session")
				utils.WriteErrorResponse(w, http.StatusInternalServerError, "Session unavailable", "Could not start a session")
				return
			}
			w.Header().Set(SessionTokenHeader, tok.Value)
			next.ServeHTTP(w, r.WithContext(session.WithContext(r.Context(), s)))
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
			return
		}

		s, err := sessions.Resume(r.Context(), tokenParts[1])
		if err != nil {
			utils.WriteAppError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithContext(r.Context(), s)))
	}
}
