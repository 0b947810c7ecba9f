package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TRAVELSHARE_CLIENT/internal/handlers"
	"TRAVELSHARE_CLIENT/internal/middleware"
)

// Handlers groups every HTTP handler the service exposes
type Handlers struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	GoogleAuth      *handlers.GoogleAuthHandler
	Search          *handlers.SearchHandler
	Experiences     *handlers.ExperiencesHandler
	Bookmarks       *handlers.BookmarksHandler
	Recommendations *handlers.RecommendationsHandler
	Dashboard       *handlers.DashboardHandler
	Trips           *handlers.TripsHandler
	Notifications   *handlers.NotificationsHandler
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, h Handlers, sessions middleware.Sessions) {
	withSession := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.SessionMiddleware(next, sessions)
	}

	// Health check routes
	mux.HandleFunc("/healthz", h.Health.HealthCheck)
	mux.HandleFunc("/livez", h.Health.LivenessCheck)
	mux.HandleFunc("/readyz", h.Health.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("/api/auth/google/login", h.GoogleAuth.GoogleLogin)
	mux.HandleFunc("/api/auth/google/callback", h.GoogleAuth.GoogleCallback)
	mux.HandleFunc("/api/auth/dev-login", h.Auth.DevLogin)
	mux.HandleFunc("/api/auth/logout", withSession(h.Auth.Logout))
	mux.HandleFunc("/api/auth/session", withSession(h.Auth.Session))

	// Search routes
	mux.HandleFunc("/api/search", withSession(h.Search.Search))
	mux.HandleFunc("/api/search/mode", withSession(h.Search.SwitchMode))
	mux.HandleFunc("/api/search/select", withSession(h.Search.Select))
	mux.HandleFunc("/api/browse", withSession(h.Search.Browse))

	// Experience routes
	mux.HandleFunc("/api/experiences", withSession(h.Experiences.Experiences))
	mux.HandleFunc("/api/experiences/", withSession(h.Experiences.Experiences))

	// Bookmark routes
	mux.HandleFunc("/api/bookmarks", withSession(h.Bookmarks.ListBookmarks))
	mux.HandleFunc("/api/bookmarks/toggle", withSession(h.Bookmarks.ToggleBookmark))

	// Recommendation routes
	mux.HandleFunc("/api/recommendations", withSession(h.Recommendations.Recommend))
	mux.HandleFunc("/api/recommendations/parse", h.Recommendations.Parse)

	// Dashboard routes
	mux.HandleFunc("/api/dashboard", withSession(h.Dashboard.Dashboard))
	mux.HandleFunc("/api/dashboard/", withSession(h.Dashboard.Dashboard))

	// Trip routes
	mux.HandleFunc("/api/trips", withSession(h.Trips.Trips))
	mux.HandleFunc("/api/trips/", withSession(h.Trips.Trips))

	// Notification routes
	mux.HandleFunc("/api/notifications", withSession(h.Notifications.ListNotifications))
	mux.HandleFunc("/api/notifications/read", withSession(h.Notifications.MarkRead))
	mux.HandleFunc("/api/notifications/read-all", withSession(h.Notifications.MarkAllRead))

	// API docs
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Write([]byte("TravelShare client service is running."))
}
