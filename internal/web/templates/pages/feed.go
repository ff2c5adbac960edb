package pages

import (
	"time"

	"github.com/a-h/templ"

	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/web/templates/components"
	"github.com/passa-a-bola/passa-web/internal/web/templates/layout"
	"github.com/passa-a-bola/passa-web/internal/web/templates/markup"
)

// FeedData holds data for the community feed
type FeedData struct {
	layout.PageData
	Posts []model.Post
	Now   time.Time
	Draft string
	Error string
}

// Feed renders the post form followed by the posts, newest first
func Feed(data FeedData) templ.Component {
	return layout.Base(data.PageData, markup.Func(func(b *markup.Writer) {
		b.Raw(`<section class="feed"><h1>Feed da comunidade</h1>`)
		formError(b, data.Error)
		b.Raw(`<form method="post" action="/feed/posts" enctype="multipart/form-data" class="post-form">`)
		b.Raw(`<textarea name="conteudo" placeholder="O que está acontecendo no seu futebol?">`)
		b.Text(data.Draft)
		b.Raw(`</textarea><label for="imagem">Imagem</label><input type="file" id="imagem" name="imagem" accept="image/*">`)
		b.Raw(`<button type="submit">Publicar</button></form><div class="posts">`)
		for _, p := range data.Posts {
			b.Component(components.PostCard(p, data.Now))
		}
		b.Raw(`</div></section>`)
	}))
}
