// Package filter narrows collections by the criteria a visitor enters on
// the listing pages.
package filter

import (
	"net/url"
	"strings"

	"github.com/passa-a-bola/passa-web/internal/model"
)

// Query string parameters
const (
	ParamSearch      = "busca"
	ParamPosition    = "posicao"
	ParamNationality = "nacionalidade"
	ParamStatus      = "status"
	ParamType        = "tipo"
)

// PlayerCriteria holds the players page filters
type PlayerCriteria struct {
	Search      string
	Position    string
	Nationality string
	Status      string
}

// PlayerCriteriaFromQuery reads criteria from a query string
func PlayerCriteriaFromQuery(q url.Values) PlayerCriteria {
	return PlayerCriteria{
		Search:      strings.TrimSpace(q.Get(ParamSearch)),
		Position:    strings.TrimSpace(q.Get(ParamPosition)),
		Nationality: strings.TrimSpace(q.Get(ParamNationality)),
		Status:      strings.TrimSpace(q.Get(ParamStatus)),
	}
}

// IsEmpty reports whether no criterion is set
func (c PlayerCriteria) IsEmpty() bool {
	return c == PlayerCriteria{}
}

// Query encodes the set criteria as a query string
func (c PlayerCriteria) Query() url.Values {
	q := url.Values{}
	setNonEmpty(q, ParamSearch, c.Search)
	setNonEmpty(q, ParamPosition, c.Position)
	setNonEmpty(q, ParamNationality, c.Nationality)
	setNonEmpty(q, ParamStatus, c.Status)
	return q
}

// Players applies the criteria in order: name search, position,
// nationality, then status. Text criteria match case-insensitive
// substrings; status must match exactly.
func Players(players []model.Player, c PlayerCriteria) []model.Player {
	result := append([]model.Player(nil), players...)

	if c.Search != "" {
		result = keep(result, func(p model.Player) bool { return containsFold(p.Name, c.Search) })
	}
	if c.Position != "" {
		result = keep(result, func(p model.Player) bool { return containsFold(p.Position, c.Position) })
	}
	if c.Nationality != "" {
		result = keep(result, func(p model.Player) bool { return containsFold(p.Nationality, c.Nationality) })
	}
	if c.Status != "" {
		result = keep(result, func(p model.Player) bool { return p.Status == c.Status })
	}
	return result
}

// EventCriteria holds the events page filters
type EventCriteria struct {
	Search string
	Type   string
}

// EventCriteriaFromQuery reads criteria from a query string
func EventCriteriaFromQuery(q url.Values) EventCriteria {
	return EventCriteria{
		Search: strings.TrimSpace(q.Get(ParamSearch)),
		Type:   strings.TrimSpace(q.Get(ParamType)),
	}
}

// IsEmpty reports whether no criterion is set
func (c EventCriteria) IsEmpty() bool {
	return c == EventCriteria{}
}

// Query encodes the set criteria as a query string
func (c EventCriteria) Query() url.Values {
	q := url.Values{}
	setNonEmpty(q, ParamSearch, c.Search)
	setNonEmpty(q, ParamType, c.Type)
	return q
}

// Events applies the search (title or venue) then the exact type match
func Events(events []model.Event, c EventCriteria) []model.Event {
	result := append([]model.Event(nil), events...)

	if c.Search != "" {
		result = keep(result, func(e model.Event) bool {
			return containsFold(e.Title, c.Search) || containsFold(e.Venue, c.Search)
		})
	}
	if c.Type != "" {
		result = keep(result, func(e model.Event) bool { return e.Type == c.Type })
	}
	return result
}

func keep[T any](items []T, pred func(T) bool) []T {
	out := items[:0:0]
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func setNonEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
