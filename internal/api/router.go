package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/passa-a-bola/passa-web/internal/api/handler"
	"github.com/passa-a-bola/passa-web/internal/api/middleware"
	"github.com/passa-a-bola/passa-web/internal/api/response"
	"github.com/passa-a-bola/passa-web/internal/dependencies/clock"
	httpmw "github.com/passa-a-bola/passa-web/internal/middleware"
	"github.com/passa-a-bola/passa-web/internal/obs"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	Metrics      *obs.Metrics
	Clock        clock.Clock
	Auth         handler.Authenticator
	Catalog      handler.Catalog
	LoginLimiter *httpmw.RateLimiter // nil disables login rate limiting
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	authHandler := handler.NewAuthHandler(cfg.Auth, cfg.Logger)
	catalogHandler := handler.NewCatalogHandler(cfg.Catalog)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(httpmw.Logging(cfg.Logger))
	api.Use(httpmw.Metrics(cfg.Metrics))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.Handle("/auth/login", httpmw.RateLimit(cfg.LoginLimiter, authHandler.TooManyAttempts)(
		http.HandlerFunc(authHandler.Login),
	)).Methods(http.MethodPost)

	// Collections require a live token
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(cfg.Clock))
	protected.HandleFunc("/players", catalogHandler.Players).Methods(http.MethodGet)
	protected.HandleFunc("/events", catalogHandler.Events).Methods(http.MethodGet)
	protected.HandleFunc("/tournaments", catalogHandler.Tournaments).Methods(http.MethodGet)
	protected.HandleFunc("/stats", catalogHandler.Stats).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
