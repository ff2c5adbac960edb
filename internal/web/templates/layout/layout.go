package layout

import (
	"github.com/a-h/templ"

	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/web/templates/markup"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // success, error or info
	Message string
}

// PageData holds what every page needs for the shared layout
type PageData struct {
	Title string
	User  *model.User
	Flash *FlashMessage
}

// Base renders the document shell around body
func Base(data PageData, body templ.Component) templ.Component {
	return markup.Func(func(b *markup.Writer) {
		b.Raw(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8">`)
		b.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.Raw(`<title>`)
		if data.Title != "" {
			b.Text(data.Title + " | ")
		}
		b.Raw(`Passa a Bola</title><link rel="stylesheet" href="/static/app.css"></head><body>`)
		b.Component(nav(data.User))
		b.Raw(`<main>`)
		if data.Flash != nil {
			b.Raw(`<div class="flash flash-` + flashClass(data.Flash.Type) + `" role="status">`)
			b.Text(data.Flash.Message)
			b.Raw(`</div>`)
		}
		b.Component(body)
		b.Raw(`</main><footer><p>Passa a Bola: futebol feminino para todas.</p></footer></body></html>`)
	})
}

func nav(user *model.User) templ.Component {
	return markup.Func(func(b *markup.Writer) {
		b.Raw(`<nav><a href="/" class="brand">Passa a Bola</a><ul>`)
		if user != nil {
			b.Raw(`<li><a href="/dashboard">Painel</a></li>`)
			b.Raw(`<li><a href="/players">Jogadoras</a></li>`)
			b.Raw(`<li><a href="/events">Eventos</a></li>`)
			b.Raw(`<li><a href="/tournaments">Torneios</a></li>`)
			b.Raw(`<li><a href="/feed">Feed</a></li>`)
			b.Raw(`</ul><div class="account"><span class="user-name">`)
			b.Text(user.DisplayName())
			b.Raw(`</span><form method="post" action="/logout"><button type="submit">Sair</button></form></div>`)
		} else {
			b.Raw(`<li><a href="/login">Entrar</a></li>`)
			b.Raw(`<li><a href="/register">Cadastrar</a></li></ul>`)
		}
		b.Raw(`</nav>`)
	})
}

func flashClass(t string) string {
	switch t {
	case "success", "error":
		return t
	default:
		return "info"
	}
}
