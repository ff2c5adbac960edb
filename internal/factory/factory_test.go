package factory

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passa-a-bola/passa-web/internal/config"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/storage/memory"
	redisstorage "github.com/passa-a-bola/passa-web/internal/storage/redis"
	"github.com/passa-a-bola/passa-web/internal/testutil"
)

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(config.Default(), nil)
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.IsType(t, &memory.Storage{}, app.Storage)
	assert.NotNil(t, app.LoginLimiter)
}

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.StorageType = config.StorageRedis
	cfg.RedisURL = "redis://" + mr.Addr()

	app, err := New(cfg, testutil.NopLogger())
	require.NoError(t, err)
	assert.IsType(t, &redisstorage.Storage{}, app.Storage)

	token := testutil.Token(t, "ana@example.com", app.Clock.Now().Add(time.Hour))
	_, err = app.Sessions.Login(t.Context(), "client-1", token, model.User{Email: "ana@example.com", Role: model.RoleFan})
	require.NoError(t, err)
	assert.True(t, mr.Exists("passa:client:client-1"))

	require.NoError(t, app.Close())
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	cfg := config.Default()
	cfg.StorageType = "sqlite"

	_, err := New(cfg, nil)
	assert.ErrorContains(t, err, "invalid storage type")
}

func TestNewDisablesRateLimit(t *testing.T) {
	cfg := config.Default()
	cfg.LoginRatePerMinute = 0

	app, err := New(cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, app.LoginLimiter)
}

func TestHandlerRoutesWebAndAPI(t *testing.T) {
	app := NewTestApp("http://127.0.0.1:0")
	h := app.Handler()

	for _, path := range []string{"/healthz", "/api/v1/health"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String(), path)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "passa_http_requests_total")
}
