package catalog

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/passa-a-bola/passa-web/internal/backend"
	"github.com/passa-a-bola/passa-web/internal/fixtures"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/obs"
	"github.com/passa-a-bola/passa-web/internal/testutil"
)

type ProviderSuite struct {
	suite.Suite
	api      *testutil.Backend
	metrics  *obs.Metrics
	provider *Provider
	ctx      context.Context
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}

func (s *ProviderSuite) SetupTest() {
	s.api = testutil.NewBackend(s.T())
	s.metrics = obs.NewMetrics()
	s.provider = New(backend.NewClient(s.api.URL(), time.Second), s.metrics, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ProviderSuite) bundledPlayers() []model.Player {
	players, err := fixtures.Players()
	s.Require().NoError(err)
	return players
}

func (s *ProviderSuite) bundledEvents() []model.Event {
	events, err := fixtures.Events()
	s.Require().NoError(err)
	return events
}

func (s *ProviderSuite) TestPlayersFromRemote() {
	players := s.provider.Players(s.ctx, "tok")

	s.Require().Len(players, 1)
	s.Equal("Remote Player", players[0].Name)
	s.Equal(1.0, s.metrics.FetchCount(PlayersPath, obs.OutcomeRemote))
}

func (s *ProviderSuite) TestForwardsToken() {
	_ = s.provider.Players(s.ctx, "tok")

	reqs := s.api.Requests()
	s.Require().Len(reqs, 1)
	s.Equal("Bearer tok", reqs[0].Authorization)
}

func (s *ProviderSuite) TestPlayersFallbackOnTransportError() {
	s.api.Close()

	players := s.provider.Players(s.ctx, "")

	s.Equal(s.bundledPlayers(), players)
	s.Equal(1.0, s.metrics.FetchCount(PlayersPath, obs.OutcomeFallback))
}

func (s *ProviderSuite) TestPlayersFallbackOnStatusError() {
	s.api.Fail(PlayersPath, http.StatusInternalServerError)

	s.Equal(s.bundledPlayers(), s.provider.Players(s.ctx, ""))
}

func (s *ProviderSuite) TestPlayersFallbackOnUnauthorized() {
	s.api.Fail(PlayersPath, http.StatusUnauthorized)

	s.Equal(s.bundledPlayers(), s.provider.Players(s.ctx, ""))
}

func (s *ProviderSuite) TestEmptyRemoteCollectionIsKept() {
	s.api.SetPlayers(nil)

	players := s.provider.Players(s.ctx, "")
	s.NotNil(players)
	s.Empty(players)
}

func (s *ProviderSuite) TestEventsFallback() {
	s.api.Fail(EventsPath, http.StatusBadGateway)

	s.Equal(s.bundledEvents(), s.provider.Events(s.ctx, ""))
}

func (s *ProviderSuite) TestTournamentsFallbackIsBuiltIn() {
	s.api.Fail(TournamentsPath, http.StatusInternalServerError)

	s.Equal(fixtures.Tournaments(), s.provider.Tournaments(s.ctx, ""))
}

func (s *ProviderSuite) TestEachCallIsFresh() {
	_ = s.provider.Players(s.ctx, "")
	_ = s.provider.Players(s.ctx, "")

	s.Len(s.api.Requests(), 2)
}

func (s *ProviderSuite) TestStatsFromRemote() {
	stats := s.provider.Stats(s.ctx, "")

	s.Equal(model.Stats{Players: 1, Events: 1, Tournaments: 1}, stats)
}

func (s *ProviderSuite) TestStatsFallbackWhenAnyFetchFails() {
	s.api.Fail(TournamentsPath, http.StatusInternalServerError)

	stats := s.provider.Stats(s.ctx, "")

	s.Equal(model.Stats{
		Players:     len(s.bundledPlayers()),
		Events:      len(s.bundledEvents()),
		Tournaments: fixtures.TournamentCount,
	}, stats)
}

func (s *ProviderSuite) TestStatsStopsAtFirstFailure() {
	s.api.Fail(PlayersPath, http.StatusInternalServerError)

	_ = s.provider.Stats(s.ctx, "")

	reqs := s.api.Requests()
	s.Require().Len(reqs, 1)
	s.Equal(PlayersPath, reqs[0].Path)
}

func (s *ProviderSuite) TestFallbackIsLogged() {
	logger, buf := testutil.CaptureLogger()
	provider := New(backend.NewClient(s.api.URL(), time.Second), s.metrics, logger)
	s.api.Fail(EventsPath, http.StatusInternalServerError)

	_ = provider.Events(s.ctx, "")

	s.Contains(buf.String(), "remote collection unavailable")
	s.Contains(buf.String(), EventsPath)
}
