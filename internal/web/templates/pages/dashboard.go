package pages

import (
	"github.com/a-h/templ"

	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/session"
	"github.com/passa-a-bola/passa-web/internal/web/templates/components"
	"github.com/passa-a-bola/passa-web/internal/web/templates/layout"
	"github.com/passa-a-bola/passa-web/internal/web/templates/markup"
)

// DashboardData holds data for the signed-in landing page
type DashboardData struct {
	layout.PageData
	Session session.Session
	Stats   model.Stats
}

// Dashboard renders the stats panel and the sections for the user's role
func Dashboard(data DashboardData) templ.Component {
	return layout.Base(data.PageData, markup.Func(func(b *markup.Writer) {
		var user model.User
		if data.User != nil {
			user = *data.User
		}

		b.Raw(`<section class="welcome"><h1>Olá, `)
		b.Text(user.DisplayName())
		b.Raw(`!</h1><p class="role">`)
		b.Text(user.Role.Label())
		b.Raw(`</p></section>`)
		b.Component(components.StatsPanel(data.Stats))

		switch {
		case user.Role.IsPlayer():
			b.Raw(`<section class="role-section player-actions"><h2>Meu perfil</h2>`)
			b.Raw(`<p>Mantenha seus dados atualizados para ser encontrada por olheiros.</p>`)
			b.Raw(`<a href="/perfil" class="button">Ver perfil</a><a href="/perfil/editar" class="button secondary">Editar perfil</a></section>`)
		case data.Session.HasRole(model.RoleScout):
			b.Raw(`<section class="role-section scout-actions"><h2>Buscar talentos</h2>`)
			b.Raw(`<p>Filtre jogadoras por posição, nacionalidade e status.</p>`)
			b.Raw(`<a href="/players" class="button">Buscar jogadoras</a></section>`)
		case data.Session.HasRole(model.RoleFan):
			b.Raw(`<section class="role-section fan-actions"><h2>Acompanhe</h2>`)
			b.Raw(`<p>Veja os próximos eventos e torneios da comunidade.</p>`)
			b.Raw(`<a href="/events" class="button">Ver eventos</a></section>`)
		}

		b.Raw(`<section class="quick-links"><h2>Explorar</h2><ul>`)
		b.Raw(`<li><a href="/players">Jogadoras</a></li><li><a href="/events">Eventos</a></li>`)
		b.Raw(`<li><a href="/tournaments">Torneios</a></li><li><a href="/feed">Feed da comunidade</a></li>`)
		b.Raw(`</ul></section>`)
	}))
}
