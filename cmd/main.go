// @title TravelShare Client API
// @version 1.0
// @description Session-holding backend for the TravelShare browser UI: search, bookmarks, AI recommendations and dashboards over the TravelShare API service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	_ "TRAVELSHARE_CLIENT/docs" // This is required for swagger
	"TRAVELSHARE_CLIENT/internal/config"
	"TRAVELSHARE_CLIENT/internal/experiences"
	"TRAVELSHARE_CLIENT/internal/gateway"
	"TRAVELSHARE_CLIENT/internal/handlers"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/middleware"
	"TRAVELSHARE_CLIENT/internal/recommend"
	"TRAVELSHARE_CLIENT/internal/routes"
	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/trips"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init("travelshare-client", cfg.Log.Env, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gw := gateway.NewClient(cfg.Gateway)
	deps := map[string]handlers.Pinger{"api": gw}

	// Session store
	var store session.Store
	switch cfg.Session.Store {
	case "redis":
		client, err := session.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr()).Msg("Failed to connect to Redis")
		}
		defer client.Close()
		store = session.NewRedisStore(client)
		deps["redis"] = handlers.PingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
	default:
		store = session.NewMemoryStore()
	}

	tokens := session.NewTokens(cfg.Session.Secret, cfg.Session.TTL)
	sessions := session.NewManager(gw, store, tokens, cfg.Session.TTL)
	go sessions.RunSweeper(ctx, time.Minute)

	// --- HTTP Handlers ---
	mux := http.NewServeMux()
	routes.SetupRoutes(mux, routes.Handlers{
		Health:          handlers.NewHealthHandler(deps),
		Auth:            handlers.NewAuthHandler(sessions, cfg.Session.DevLogin),
		GoogleAuth:      handlers.NewGoogleAuthHandler(cfg, sessions),
		Search:          handlers.NewSearchHandler(),
		Experiences:     handlers.NewExperiencesHandler(experiences.NewService(gw)),
		Bookmarks:       handlers.NewBookmarksHandler(),
		Recommendations: handlers.NewRecommendationsHandler(recommend.NewRecommender(gw)),
		Dashboard:       handlers.NewDashboardHandler(),
		Trips:           handlers.NewTripsHandler(trips.NewService(gw)),
		Notifications:   handlers.NewNotificationsHandler(),
	}, sessions)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{middleware.SessionTokenHeader, middleware.RequestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(middleware.RequestLogger(mux)),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("api_url", cfg.Gateway.APIURL).Str("session_store", cfg.Session.Store).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("ListenAndServe")
		}
	}()

	// Wait for SIGINT/SIGTERM to shut down gracefully
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	}
	log.Info().Msg("Server stopped")
}
