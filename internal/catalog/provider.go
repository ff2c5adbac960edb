// Package catalog loads the players, events and tournaments collections
// from the remote API, substituting bundled data when the API fails.
package catalog

import (
	"context"
	"log/slog"

	"github.com/passa-a-bola/passa-web/internal/fixtures"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/obs"
)

// Remote resource paths
const (
	PlayersPath     = "/api/players"
	EventsPath      = "/api/events"
	TournamentsPath = "/api/tournaments"
)

// Getter is the part of the API client the provider needs
type Getter interface {
	Get(ctx context.Context, path, token string, result any) error
}

// Provider fetches collections. Every call is one fresh remote attempt
// for the whole collection; nothing is cached or retried.
type Provider struct {
	api     Getter
	metrics *obs.Metrics
	logger  *slog.Logger
}

// New creates a Provider
func New(api Getter, metrics *obs.Metrics, logger *slog.Logger) *Provider {
	return &Provider{
		api:     api,
		metrics: metrics,
		logger:  logger,
	}
}

// FetchCollection gets the collection at path, or fallback on any failure.
// The second result reports whether remote data was used.
func FetchCollection[T any](ctx context.Context, p *Provider, path, token string, fallback func() []T) ([]T, bool) {
	var items []T
	if err := p.api.Get(ctx, path, token, &items); err != nil {
		p.logger.Warn("remote collection unavailable, using fallback",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		p.metrics.ObserveFetch(path, obs.OutcomeFallback)
		return fallback(), false
	}

	p.metrics.ObserveFetch(path, obs.OutcomeRemote)
	if items == nil {
		items = []T{}
	}
	return items, true
}

// Players returns the remote players or the bundled players fixture
func (p *Provider) Players(ctx context.Context, token string) []model.Player {
	players, _ := FetchCollection(ctx, p, PlayersPath, token, p.fallbackPlayers)
	return players
}

// Events returns the remote events or the bundled events fixture
func (p *Provider) Events(ctx context.Context, token string) []model.Event {
	events, _ := FetchCollection(ctx, p, EventsPath, token, p.fallbackEvents)
	return events
}

// Tournaments returns the remote tournaments or the built-in list
func (p *Provider) Tournaments(ctx context.Context, token string) []model.Tournament {
	tournaments, _ := FetchCollection(ctx, p, TournamentsPath, token, fixtures.Tournaments)
	return tournaments
}

// Stats counts the three collections. If any remote fetch fails, all three
// numbers come from the bundled data and the fixed tournament count.
func (p *Provider) Stats(ctx context.Context, token string) model.Stats {
	players, ok := FetchCollection(ctx, p, PlayersPath, token, p.fallbackPlayers)
	if !ok {
		return p.fallbackStats()
	}
	events, ok := FetchCollection(ctx, p, EventsPath, token, p.fallbackEvents)
	if !ok {
		return p.fallbackStats()
	}
	tournaments, ok := FetchCollection(ctx, p, TournamentsPath, token, fixtures.Tournaments)
	if !ok {
		return p.fallbackStats()
	}

	return model.Stats{
		Players:     len(players),
		Events:      len(events),
		Tournaments: len(tournaments),
	}
}

func (p *Provider) fallbackStats() model.Stats {
	return model.Stats{
		Players:     len(p.fallbackPlayers()),
		Events:      len(p.fallbackEvents()),
		Tournaments: fixtures.TournamentCount,
	}
}

func (p *Provider) fallbackPlayers() []model.Player {
	players, err := fixtures.Players()
	if err != nil {
		p.logger.Error("bundled players unreadable", slog.String("error", err.Error()))
		return []model.Player{}
	}
	return players
}

func (p *Provider) fallbackEvents() []model.Event {
	events, err := fixtures.Events()
	if err != nil {
		p.logger.Error("bundled events unreadable", slog.String("error", err.Error()))
		return []model.Event{}
	}
	return events
}
