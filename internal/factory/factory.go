package factory

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/passa-a-bola/passa-web/internal/api"
	"github.com/passa-a-bola/passa-web/internal/backend"
	"github.com/passa-a-bola/passa-web/internal/catalog"
	"github.com/passa-a-bola/passa-web/internal/config"
	"github.com/passa-a-bola/passa-web/internal/dependencies/clock"
	"github.com/passa-a-bola/passa-web/internal/feed"
	httpmw "github.com/passa-a-bola/passa-web/internal/middleware"
	"github.com/passa-a-bola/passa-web/internal/obs"
	"github.com/passa-a-bola/passa-web/internal/services/auth"
	"github.com/passa-a-bola/passa-web/internal/session"
	"github.com/passa-a-bola/passa-web/internal/storage"
	"github.com/passa-a-bola/passa-web/internal/storage/memory"
	redisstorage "github.com/passa-a-bola/passa-web/internal/storage/redis"
	"github.com/passa-a-bola/passa-web/internal/web"
	"github.com/passa-a-bola/passa-web/internal/web/middleware"
)

// App contains all wired application components
type App struct {
	Config config.Config
	Logger *slog.Logger

	// Storage
	Storage storage.Storage

	// External dependencies
	Clock   clock.Clock
	API     *backend.Client
	Metrics *obs.Metrics

	// Services
	Catalog     *catalog.Provider
	Feed        *feed.Service
	Sessions    *session.Store
	AuthService *auth.Service

	// HTTP plumbing
	Cookies      *middleware.ClientCookies
	LoginLimiter *httpmw.RateLimiter

	closers []io.Closer
}

// New creates a new application with all dependencies wired. A nil
// logger discards output.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var (
		store   storage.Storage
		closers []io.Closer
	)
	switch cfg.StorageType {
	case "", config.StorageMemory:
		store = memory.New()
	case config.StorageRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, fmt.Errorf("invalid storage type %q: must be %q or %q", cfg.StorageType, config.StorageMemory, config.StorageRedis)
	}

	app, err := newWithDependencies(cfg, store, clock.New(), logger)
	if err != nil {
		return nil, err
	}
	app.closers = closers
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(cfg config.Config, store storage.Storage, clk clock.Clock, logger *slog.Logger) (*App, error) {
	cookies, err := middleware.NewClientCookies(cfg.SessionSecret, cfg.SecureCookies)
	if err != nil {
		return nil, err
	}

	metrics := obs.NewMetrics()
	client := backend.NewClient(cfg.APIURL, cfg.APITimeout)
	feedService := feed.New(clk, logger)
	sessions := session.New(store, clk, logger)

	var limiter *httpmw.RateLimiter
	if cfg.LoginRatePerMinute > 0 {
		limiter = httpmw.NewRateLimiter(cfg.LoginRatePerMinute, cfg.TrustForwarded)
	}

	return &App{
		Config:       cfg,
		Logger:       logger,
		Storage:      store,
		Clock:        clk,
		API:          client,
		Metrics:      metrics,
		Catalog:      catalog.New(client, metrics, logger),
		Feed:         feedService,
		Sessions:     sessions,
		AuthService:  auth.New(client, sessions, feedService, logger),
		Cookies:      cookies,
		LoginLimiter: limiter,
	}, nil
}

// Handler combines the JSON API under /api/ with the web front end
func (a *App) Handler() http.Handler {
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:       a.Logger,
		Metrics:      a.Metrics,
		Clock:        a.Clock,
		Auth:         a.API,
		Catalog:      a.Catalog,
		LoginLimiter: a.LoginLimiter,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:       a.Logger,
		Metrics:      a.Metrics,
		Clock:        a.Clock,
		Cookies:      a.Cookies,
		Sessions:     a.Sessions,
		AuthService:  a.AuthService,
		Catalog:      a.Catalog,
		Feed:         a.Feed,
		LoginLimiter: a.LoginLimiter,
		StaticDir:    a.Config.StaticDir,
	})

	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)
	return mux
}

// Close releases storage connections
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
