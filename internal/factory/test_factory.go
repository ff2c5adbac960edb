package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/passa-a-bola/passa-web/internal/config"
	"github.com/passa-a-bola/passa-web/internal/dependencies/mocks"
	"github.com/passa-a-bola/passa-web/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.Clock
	Memory    *memory.Storage
}

// TestStart is the frozen time every TestApp starts at
var TestStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// NewTestApp creates an App talking to the remote API at apiURL, with
// memory storage, a mock clock and no login rate limit
func NewTestApp(apiURL string) *TestApp {
	cfg := config.Default()
	cfg.APIURL = apiURL
	cfg.APITimeout = 2 * time.Second
	cfg.LoginRatePerMinute = 0
	cfg.SessionSecret = "test-session-secret"

	store := memory.New()
	mockClock := mocks.NewClock(TestStart)

	app, err := newWithDependencies(cfg, store, mockClock, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	if err != nil {
		// Only cookie key derivation can fail, and not for a fixed secret
		panic(err)
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Memory:    store,
	}
}
