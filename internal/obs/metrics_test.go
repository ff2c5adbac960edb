package obs

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveFetch(t *testing.T) {
	m := NewMetrics()

	m.ObserveFetch("players", OutcomeFallback)
	m.ObserveFetch("players", OutcomeFallback)
	m.ObserveFetch("events", OutcomeRemote)

	assert.Equal(t, 2.0, m.FetchCount("players", OutcomeFallback))
	assert.Equal(t, 1.0, m.FetchCount("events", OutcomeRemote))
	assert.Equal(t, 0.0, m.FetchCount("events", OutcomeFallback))
}

func TestRequestStarted(t *testing.T) {
	m := NewMetrics()

	done := m.RequestStarted()
	done(http.MethodGet, "/players", "200")

	assert.Equal(t, 1.0, m.RequestCount(http.MethodGet, "/players", "200"))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewMetrics()
	m.ObserveFetch("players", OutcomeRemote)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(body), `passa_catalog_fetch_total{outcome="remote",resource="players"} 1`)
}

func TestSeparateRegistries(t *testing.T) {
	// Two instances must not collide on registration
	a := NewMetrics()
	b := NewMetrics()
	a.ObserveFetch("players", OutcomeRemote)

	assert.Equal(t, 0.0, b.FetchCount("players", OutcomeRemote))
}
