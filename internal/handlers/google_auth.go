package handlers

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"TRAVELSHARE_CLIENT/internal/config"
	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/middleware"
	"TRAVELSHARE_CLIENT/internal/models"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// IdentityFetcher turns an OAuth token into the signed-in identity
type IdentityFetcher func(ctx context.Context, token *oauth2.Token) (models.Identity, error)

// GoogleAuthHandler handles Google OAuth authentication
type GoogleAuthHandler struct {
	oauth2Config  *oauth2.Config
	sessions      SessionManager
	stateSecret   string
	frontendURL   string
	fetchIdentity IdentityFetcher
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(cfg *config.Config, sessions SessionManager) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleAuthHandler{
		oauth2Config:  oauth2Config,
		sessions:      sessions,
		stateSecret:   cfg.Session.Secret,
		frontendURL:   cfg.GoogleOAuth.FrontendURL,
		fetchIdentity: getGoogleUserInfo,
	}
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Initiate Google OAuth login flow
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse "Google OAuth URL"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Signed state parameter for CSRF protection
	state, err := middleware.GenerateStateToken(h.stateSecret)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to start login", err.Error())
		return
	}

	authURL := h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)

	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{AuthURL: authURL, State: state})
}

// GoogleCallback handles Google OAuth callback
// @Summary Google OAuth callback
// @Description Exchange the authorization code, start a session and redirect to the frontend with its token
// @Tags authentication
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State parameter issued by the login endpoint"
// @Success 302 "Redirect to the frontend callback"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 502 {object} dto.ErrorResponse "API service unavailable"
// @Router /api/auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "Authorization code is required")
		return
	}
	if _, err := middleware.ValidateStateToken(r.URL.Query().Get("state"), h.stateSecret); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid state", "Login request expired or was tampered with")
		return
	}

	token, err := h.oauth2Config.Exchange(r.Context(), code)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", err.Error())
		return
	}

	identity, err := h.fetchIdentity(r.Context(), token)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Failed to get user info", err.Error())
		return
	}

	s, tok, err := h.sessions.Begin(r.Context(), identity)
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Str("email", identity.Email).Msg("google login failed")
		utils.WriteAppError(w, err)
		return
	}

	// Redirect to frontend with token
	q := url.Values{}
	q.Set("token", tok.Value)
	q.Set("user_id", s.UserID())
	q.Set("email", identity.Email)
	q.Set("display_name", identity.Name)
	q.Set("provider", "google")
	http.Redirect(w, r, h.frontendURL+"/callback?"+q.Encode(), http.StatusFound)
}

// getGoogleUserInfo fetches user information from Google
func getGoogleUserInfo(ctx context.Context, token *oauth2.Token) (models.Identity, error) {
	service, err := googleOAuth2.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return models.Identity{}, err
	}

	userInfo, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return models.Identity{}, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return models.Identity{
		Subject:  "google-oauth2|" + userInfo.Id,
		Email:    userInfo.Email,
		Name:     userInfo.Name,
		Picture:  userInfo.Picture,
		Verified: verified,
	}, nil
}
