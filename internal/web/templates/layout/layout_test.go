package layout

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passa-a-bola/passa-web/internal/model"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestBaseAnonymous(t *testing.T) {
	doc := render(t, Base(PageData{Title: "Entrar"}, templ.Raw("<p id=body>ok</p>")))

	assert.Equal(t, "Entrar | Passa a Bola", doc.Find("title").Text())
	assert.Equal(t, 1, doc.Find("nav a[href='/login']").Length())
	assert.Equal(t, 0, doc.Find("form[action='/logout']").Length())
	assert.Equal(t, "ok", doc.Find("main #body").Text())
}

func TestBaseAuthenticated(t *testing.T) {
	user := &model.User{Email: "ana@example.com", Name: "Ana <b>", Role: model.RoleFan}
	doc := render(t, Base(PageData{
		User:  user,
		Flash: &FlashMessage{Type: "success", Message: "Bem-vinda!"},
	}, nil))

	assert.Equal(t, "Ana <b>", doc.Find("nav .user-name").Text())
	assert.Equal(t, 1, doc.Find("form[action='/logout']").Length())
	assert.Equal(t, "Bem-vinda!", doc.Find(".flash.flash-success").Text())
}

func TestBaseUnknownFlashTypeFallsBackToInfo(t *testing.T) {
	doc := render(t, Base(PageData{Flash: &FlashMessage{Type: `x" onclick="y`, Message: "m"}}, nil))
	assert.Equal(t, 1, doc.Find(".flash.flash-info").Length())
}
