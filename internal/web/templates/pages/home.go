package pages

import (
	"github.com/a-h/templ"

	"github.com/passa-a-bola/passa-web/internal/web/templates/layout"
	"github.com/passa-a-bola/passa-web/internal/web/templates/markup"
)

// HomeData holds data for the landing page
type HomeData struct {
	layout.PageData
}

// Home renders the landing page
func Home(data HomeData) templ.Component {
	return layout.Base(data.PageData, markup.Func(func(b *markup.Writer) {
		b.Raw(`<section class="hero"><h1>Passa a Bola</h1>`)
		b.Raw(`<p>A comunidade que conecta jogadoras, olheiros e torcedores do futebol feminino.</p><div class="cta">`)
		if data.User != nil {
			b.Raw(`<a href="/dashboard" class="button">Ir para o painel</a>`)
		} else {
			b.Raw(`<a href="/register" class="button">Quero participar</a><a href="/login" class="button secondary">Já tenho conta</a>`)
		}
		b.Raw(`</div></section><section class="features">`)
		b.Raw(`<article><h2>Jogadoras</h2><p>Encontre atletas amadoras e profissionais pelo Brasil.</p></article>`)
		b.Raw(`<article><h2>Eventos</h2><p>Peneiras, festivais, clínicas e torneios perto de você.</p></article>`)
		b.Raw(`<article><h2>Comunidade</h2><p>Compartilhe conquistas e acompanhe quem faz o futebol feminino acontecer.</p></article>`)
		b.Raw(`</section>`)
	}))
}
