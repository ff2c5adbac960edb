package pages

import (
	"github.com/a-h/templ"

	"github.com/passa-a-bola/passa-web/internal/filter"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/web/templates/components"
	"github.com/passa-a-bola/passa-web/internal/web/templates/layout"
	"github.com/passa-a-bola/passa-web/internal/web/templates/markup"
)

// PlayerStatuses are the values offered by the status filter
var PlayerStatuses = []string{"Ativo", "Aposentada"}

// PlayersData holds data for the players listing
type PlayersData struct {
	layout.PageData
	Players  []model.Player
	Total    int
	Criteria filter.PlayerCriteria
}

// Players renders the filter form and the matching player cards
func Players(data PlayersData) templ.Component {
	return layout.Base(data.PageData, markup.Func(func(b *markup.Writer) {
		c := data.Criteria
		b.Raw(`<section class="listing"><h1>Jogadoras</h1>`)
		b.Raw(`<form method="get" action="/players" class="filters">`)
		input(b, filter.ParamSearch, "Buscar por nome", c.Search)
		input(b, filter.ParamPosition, "Posição", c.Position)
		input(b, filter.ParamNationality, "Nacionalidade", c.Nationality)
		selectInput(b, filter.ParamStatus, "Todos os status", PlayerStatuses, c.Status)
		b.Raw(`<button type="submit">Filtrar</button>`)
		if !c.IsEmpty() {
			b.Raw(`<a href="/players" class="clear">Limpar filtros</a>`)
		}
		b.Raw(`</form>`)
		resultCount(b, len(data.Players), data.Total, "jogadoras")
		if len(data.Players) == 0 {
			b.Raw(`<p class="empty">Nenhuma jogadora encontrada.</p>`)
		}
		b.Raw(`<div class="cards">`)
		for _, p := range data.Players {
			b.Component(components.PlayerCard(p))
		}
		b.Raw(`</div></section>`)
	}))
}

// EventsData holds data for the events listing
type EventsData struct {
	layout.PageData
	Events   []model.Event
	Total    int
	Criteria filter.EventCriteria
}

// Events renders the filter form and the matching event cards
func Events(data EventsData) templ.Component {
	return layout.Base(data.PageData, markup.Func(func(b *markup.Writer) {
		c := data.Criteria
		b.Raw(`<section class="listing"><h1>Eventos</h1>`)
		b.Raw(`<form method="get" action="/events" class="filters">`)
		input(b, filter.ParamSearch, "Buscar por título ou local", c.Search)
		selectInput(b, filter.ParamType, "Todos os tipos", model.EventTypes, c.Type)
		b.Raw(`<button type="submit">Filtrar</button>`)
		if !c.IsEmpty() {
			b.Raw(`<a href="/events" class="clear">Limpar filtros</a>`)
		}
		b.Raw(`</form>`)
		resultCount(b, len(data.Events), data.Total, "eventos")
		if len(data.Events) == 0 {
			b.Raw(`<p class="empty">Nenhum evento encontrado.</p>`)
		}
		b.Raw(`<div class="cards">`)
		for _, e := range data.Events {
			b.Component(components.EventCard(e))
		}
		b.Raw(`</div></section>`)
	}))
}

// TournamentsData holds data for the tournaments listing
type TournamentsData struct {
	layout.PageData
	Tournaments []model.Tournament
}

// Tournaments renders every tournament card
func Tournaments(data TournamentsData) templ.Component {
	return layout.Base(data.PageData, markup.Func(func(b *markup.Writer) {
		b.Raw(`<section class="listing"><h1>Torneios</h1>`)
		if len(data.Tournaments) == 0 {
			b.Raw(`<p class="empty">Nenhum torneio cadastrado.</p>`)
		}
		b.Raw(`<div class="cards">`)
		for _, t := range data.Tournaments {
			b.Component(components.TournamentCard(t))
		}
		b.Raw(`</div></section>`)
	}))
}

func input(b *markup.Writer, name, placeholder, value string) {
	b.Raw(`<input type="search" name="` + name + `" placeholder="`)
	b.Text(placeholder)
	b.Raw(`" value="`)
	b.Text(value)
	b.Raw(`">`)
}

func selectInput(b *markup.Writer, name, anyLabel string, options []string, selected string) {
	b.Raw(`<select name="` + name + `"><option value="">`)
	b.Text(anyLabel)
	b.Raw(`</option>`)
	for _, o := range options {
		b.Raw(`<option value="`)
		b.Text(o)
		b.Raw(`"`)
		if o == selected {
			b.Raw(` selected`)
		}
		b.Raw(`>`)
		b.Text(o)
		b.Raw(`</option>`)
	}
	b.Raw(`</select>`)
}

func resultCount(b *markup.Writer, shown, total int, noun string) {
	b.Raw(`<p class="result-count">`)
	b.Int(shown)
	b.Raw(` de `)
	b.Int(total)
	b.Raw(` ` + noun + `</p>`)
}
