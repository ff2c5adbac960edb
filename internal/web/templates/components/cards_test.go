package components

import (
	"bytes"
	"context"
	"testing"
	"time"

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

func intPtr(n int) *int { return &n }

func TestPlayerCard(t *testing.T) {
	doc := render(t, PlayerCard(model.Player{
		ID:          "7",
		Name:        "Marta Silva",
		Age:         intPtr(38),
		Position:    "Atacante",
		Nationality: "Brasil",
		Status:      "Ativo",
		CareerGoals: intPtr(119),
	}))

	card := doc.Find("article.player[data-id='7']")
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "Marta Silva", card.Find("h3").Text())
	assert.Equal(t, "Ativo", card.Find(".status").Text())
	assert.Contains(t, card.Find("dl").Text(), "38 anos")
	assert.Contains(t, card.Find(".numbers").Text(), "119 Gols")
	assert.Equal(t, 0, card.Find("img").Length(), "no photo, no img")
	assert.NotContains(t, card.Find("dl").Text(), "Clube", "empty fields are skipped")
}

func TestCardsRejectScriptURLs(t *testing.T) {
	doc := render(t, PlayerCard(model.Player{ID: "1", Name: "Ana", Photo: "javascript:alert(1)"}))
	src, _ := doc.Find("img").Attr("src")
	assert.Equal(t, string(templ.FailedSanitizationURL), src)

	doc = render(t, PostCard(model.Post{
		ID:          1,
		AuthorPhoto: "javascript:alert(1)",
		Image:       "data:text/html;base64,PHNjcmlwdD4=",
	}, time.Now()))
	src, _ = doc.Find("header img").Attr("src")
	assert.Equal(t, string(templ.FailedSanitizationURL), src)
	src, _ = doc.Find("img.post-image").Attr("src")
	assert.Equal(t, string(templ.FailedSanitizationURL), src)
}

func TestEventCard(t *testing.T) {
	doc := render(t, EventCard(model.Event{
		ID:               "e1",
		Title:            "Peneira Sub-17",
		Type:             "Peneira",
		Date:             "2024-03-15",
		Time:             "09:00",
		Venue:            "CT Barra Funda",
		Capacity:         intPtr(50),
		AvailableSpots:   intPtr(12),
		RegistrationOpen: true,
	}))

	assert.Equal(t, "Peneira", doc.Find(".type").Text())
	assert.Contains(t, doc.Find("dl").Text(), "2024-03-15 às 09:00")
	assert.Contains(t, doc.Find("dl").Text(), "12 de 50")
	assert.Equal(t, 1, doc.Find(".registration.open").Length())
}

func TestPostCard(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	doc := render(t, PostCard(model.Post{
		ID:        3,
		Author:    "Ana",
		Content:   "Treino hoje!",
		Image:     "data:image/png;base64,AAAA",
		Likes:     5,
		CreatedAt: now.Add(-2 * time.Hour),
	}, now))

	post := doc.Find("#post-3")
	assert.Equal(t, "Ana", post.Find(".author").Text())
	assert.Equal(t, "há 2 horas", post.Find("time").Text())
	assert.Equal(t, "5", post.Find(".likes").Text())
	assert.Equal(t, 1, post.Find("form[action='/feed/posts/3/like']").Length())
	src, _ := post.Find("img.post-image").Attr("src")
	assert.Equal(t, "data:image/png;base64,AAAA", src)
}

func TestAgo(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		d    time.Duration
		want string
	}{
		{10 * time.Second, "agora"},
		{time.Minute, "há 1 minuto"},
		{45 * time.Minute, "há 45 minutos"},
		{time.Hour, "há 1 hora"},
		{3 * 24 * time.Hour, "há 3 dias"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Ago(now, now.Add(-tt.d)))
	}
}

func TestStatsPanel(t *testing.T) {
	doc := render(t, StatsPanel(model.Stats{Players: 10, Events: 6, Tournaments: 12}))
	assert.Equal(t, "10", doc.Find(".stat.players strong").Text())
	assert.Equal(t, "12", doc.Find(".stat.tournaments strong").Text())
}
