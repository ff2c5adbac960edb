// Package components renders single records as cards.
package components

import (
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/web/templates/markup"
)

// PlayerCard renders one player
func PlayerCard(p model.Player) templ.Component {
	return markup.Func(func(b *markup.Writer) {
		b.Raw(`<article class="card player" data-id="`)
		b.Text(p.ID)
		b.Raw(`">`)
		if p.Photo != "" {
			b.Raw(`<img src="`)
			b.URL(markup.ImageURL(p.Photo))
			b.Raw(`" alt="`)
			b.Text(p.Name)
			b.Raw(`">`)
		}
		b.Element("h3", p.Name)
		if p.Status != "" {
			b.Raw(`<span class="status">`)
			b.Text(p.Status)
			b.Raw(`</span>`)
		}
		b.Raw(`<dl>`)
		field(b, "Posição", p.Position)
		if p.Age != nil {
			field(b, "Idade", strconv.Itoa(*p.Age)+" anos")
		}
		field(b, "Nacionalidade", p.Nationality)
		field(b, "Clube", p.CurrentClub)
		if p.Height != nil {
			field(b, "Altura", strconv.FormatFloat(*p.Height, 'f', 2, 64)+" m")
		}
		field(b, "Pé preferido", p.PreferredFoot)
		b.Raw(`</dl>`)
		if p.Bio != "" {
			b.Raw(`<p class="bio">`)
			b.Text(p.Bio)
			b.Raw(`</p>`)
		}
		b.Raw(`<ul class="numbers">`)
		number(b, "Gols", p.CareerGoals)
		number(b, "Assistências", p.Assists)
		number(b, "Partidas", p.MatchesPlayed)
		b.Raw(`</ul></article>`)
	})
}

// EventCard renders one event
func EventCard(e model.Event) templ.Component {
	return markup.Func(func(b *markup.Writer) {
		b.Raw(`<article class="card event" data-id="`)
		b.Text(e.ID)
		b.Raw(`"><span class="type">`)
		b.Text(e.Type)
		b.Raw(`</span>`)
		b.Element("h3", e.Title)
		if e.Description != "" {
			b.Element("p", e.Description)
		}
		b.Raw(`<dl>`)
		field(b, "Data", joinNonEmpty(e.Date, e.Time, " às "))
		field(b, "Local", e.Venue)
		field(b, "Endereço", e.Address)
		field(b, "Categoria", e.Category)
		field(b, "Organização", e.Organizer)
		if e.Capacity != nil && e.AvailableSpots != nil {
			field(b, "Vagas", strconv.Itoa(*e.AvailableSpots)+" de "+strconv.Itoa(*e.Capacity))
		}
		b.Raw(`</dl>`)
		if e.RegistrationOpen {
			b.Raw(`<p class="registration open">Inscrições abertas</p>`)
		} else {
			b.Raw(`<p class="registration closed">Inscrições encerradas</p>`)
		}
		b.Raw(`</article>`)
	})
}

// TournamentCard renders one tournament
func TournamentCard(t model.Tournament) templ.Component {
	return markup.Func(func(b *markup.Writer) {
		b.Raw(`<article class="card tournament" data-id="`)
		b.Text(t.ID)
		b.Raw(`">`)
		b.Element("h3", t.Name)
		if t.Status != "" {
			b.Raw(`<span class="status">`)
			b.Text(t.Status)
			b.Raw(`</span>`)
		}
		if t.Description != "" {
			b.Element("p", t.Description)
		}
		b.Raw(`<dl>`)
		field(b, "Início", t.StartDate)
		field(b, "Local", t.Venue)
		if t.RegisteredTeams != nil {
			field(b, "Equipes", strconv.Itoa(*t.RegisteredTeams))
		}
		b.Raw(`</dl></article>`)
	})
}

// PostCard renders one feed post with its like button
func PostCard(p model.Post, now time.Time) templ.Component {
	return markup.Func(func(b *markup.Writer) {
		id := strconv.Itoa(int(p.ID))
		b.Raw(`<article class="post" id="post-` + id + `"><header><img src="`)
		b.URL(markup.ImageURL(p.AuthorPhoto))
		b.Raw(`" alt=""><strong class="author">`)
		b.Text(p.Author)
		b.Raw(`</strong><time datetime="` + p.CreatedAt.UTC().Format(time.RFC3339) + `">`)
		b.Text(Ago(now, p.CreatedAt))
		b.Raw(`</time></header><p class="content">`)
		b.Text(p.Content)
		b.Raw(`</p>`)
		if p.Image != "" {
			b.Raw(`<img class="post-image" src="`)
			b.URL(markup.ImageURL(p.Image))
			b.Raw(`" alt="Imagem da publicação">`)
		}
		b.Raw(`<footer><form method="post" action="/feed/posts/` + id + `/like">`)
		b.Raw(`<button type="submit" class="like">Curtir <span class="likes">`)
		b.Int(p.Likes)
		b.Raw(`</span></button></form><span class="comments">`)
		b.Int(p.Comments)
		b.Raw(` comentários</span></footer></article>`)
	})
}

// StatsPanel renders the community totals
func StatsPanel(s model.Stats) templ.Component {
	return markup.Func(func(b *markup.Writer) {
		b.Raw(`<section class="stats"><div class="stat players"><strong>`)
		b.Int(s.Players)
		b.Raw(`</strong> jogadoras</div><div class="stat events"><strong>`)
		b.Int(s.Events)
		b.Raw(`</strong> eventos</div><div class="stat tournaments"><strong>`)
		b.Int(s.Tournaments)
		b.Raw(`</strong> torneios</div></section>`)
	})
}

// Ago describes how long before now t happened
func Ago(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "agora"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minuto", "minutos")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hora", "horas")
	default:
		return plural(int(d/(24*time.Hour)), "dia", "dias")
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "há 1 " + one
	}
	return "há " + strconv.Itoa(n) + " " + many
}

func field(b *markup.Writer, label, value string) {
	if value == "" {
		return
	}
	b.Element("dt", label)
	b.Element("dd", value)
}

func number(b *markup.Writer, label string, n *int) {
	if n == nil {
		return
	}
	b.Raw(`<li><strong>`)
	b.Int(*n)
	b.Raw(`</strong> `)
	b.Text(label)
	b.Raw(`</li>`)
}

func joinNonEmpty(a, c, sep string) string {
	switch {
	case a == "":
		return c
	case c == "":
		return a
	default:
		return a + sep + c
	}
}
