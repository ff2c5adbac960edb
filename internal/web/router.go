package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/passa-a-bola/passa-web/internal/dependencies/clock"
	"github.com/passa-a-bola/passa-web/internal/feed"
	httpmw "github.com/passa-a-bola/passa-web/internal/middleware"
	"github.com/passa-a-bola/passa-web/internal/obs"
	"github.com/passa-a-bola/passa-web/internal/services/auth"
	"github.com/passa-a-bola/passa-web/internal/session"
	"github.com/passa-a-bola/passa-web/internal/web/handler"
	"github.com/passa-a-bola/passa-web/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger       *slog.Logger
	Metrics      *obs.Metrics
	Clock        clock.Clock
	Cookies      *middleware.ClientCookies
	Sessions     *session.Store
	AuthService  *auth.Service
	Catalog      handler.Catalog
	Feed         *feed.Service
	LoginLimiter *httpmw.RateLimiter // nil disables login rate limiting
	StaticDir    string              // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(httpmw.Logging(cfg.Logger))
	r.Use(httpmw.Metrics(cfg.Metrics))

	homeHandler := handler.NewHomeHandler()
	authHandler := handler.NewAuthHandler(cfg.AuthService, cfg.Logger)
	catalogHandler := handler.NewCatalogHandler(cfg.Catalog)
	feedHandler := handler.NewFeedHandler(cfg.Feed, cfg.Clock, cfg.Logger)

	// Infrastructure endpoints carry no client state
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Pages: every visitor gets a client ID and a restored session
	pages := r.NewRoute().Subrouter()
	pages.Use(middleware.ClientID(cfg.Cookies))
	pages.Use(middleware.Session(cfg.Sessions, cfg.Logger))
	pages.Use(middleware.Flash())

	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	pages.Handle("/login", httpmw.RateLimit(cfg.LoginLimiter, authHandler.TooManyAttempts)(
		http.HandlerFunc(authHandler.Login),
	)).Methods(http.MethodPost)
	pages.HandleFunc("/register", authHandler.RegisterPage).Methods(http.MethodGet)
	pages.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	pages.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	protected := pages.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuth())

	protected.HandleFunc("/dashboard", catalogHandler.Dashboard).Methods(http.MethodGet)
	for _, alias := range []string{"/noticias", "/perfil", "/perfil/editar"} {
		protected.HandleFunc(alias, catalogHandler.Dashboard).Methods(http.MethodGet)
	}
	protected.HandleFunc("/players", catalogHandler.Players).Methods(http.MethodGet)
	protected.HandleFunc("/events", catalogHandler.Events).Methods(http.MethodGet)
	protected.HandleFunc("/tournaments", catalogHandler.Tournaments).Methods(http.MethodGet)
	protected.HandleFunc("/feed", feedHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/feed/posts", feedHandler.Publish).Methods(http.MethodPost)
	protected.HandleFunc("/feed/posts/{id:[0-9]+}/like", feedHandler.Like).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
