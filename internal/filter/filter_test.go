package filter

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passa-a-bola/passa-web/internal/fixtures"
	"github.com/passa-a-bola/passa-web/internal/model"
)

func samplePlayers() []model.Player {
	return []model.Player{
		{ID: "1", Name: "Marta Vieira da Silva", Position: "Atacante", Nationality: "Brasil", Status: "Ativo"},
		{ID: "2", Name: "Debinha", Position: "Meio-campista", Nationality: "Brasil", Status: "Ativo"},
		{ID: "3", Name: "Formiga", Position: "Meio-campista", Nationality: "Brasil", Status: "Aposentada"},
		{ID: "4", Name: "Alexia Putellas", Position: "Meio-campista", Nationality: "Espanha", Status: "Ativo"},
		{ID: "5", Name: "Tamires", Position: "Lateral Esquerda", Nationality: "Brasil", Status: "Ativo"},
		{ID: "6", Name: "Andressa", Position: "Lateral Direita", Nationality: "Brasil", Status: "Ativo"},
	}
}

func sampleEvents() []model.Event {
	return []model.Event{
		{ID: "1", Title: "Peneira Sub-17", Type: "Peneira", Venue: "São Paulo"},
		{ID: "2", Title: "Copa de Futsal", Type: "Torneio", Venue: "Rio de Janeiro"},
		{ID: "3", Title: "Festival Meninas", Type: "Festival", Venue: "Belo Horizonte"},
		{ID: "4", Title: "Torneio de Várzea", Type: "Torneio", Venue: "São Paulo"},
	}
}

func ids[T interface{ model.Player | model.Event }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := any(item).(type) {
		case model.Player:
			out = append(out, v.ID)
		case model.Event:
			out = append(out, v.ID)
		}
	}
	return out
}

func TestPlayersEmptyCriteriaReturnsAll(t *testing.T) {
	players := samplePlayers()
	assert.Equal(t, players, Players(players, PlayerCriteria{}))
}

func TestPlayersSearchIsCaseInsensitive(t *testing.T) {
	got := Players(samplePlayers(), PlayerCriteria{Search: "MARTA"})
	assert.Equal(t, []string{"1"}, ids(got))
}

func TestPlayersPositionIsSubstring(t *testing.T) {
	// "Lateral" matches both left and right backs
	got := Players(samplePlayers(), PlayerCriteria{Position: "lateral"})
	assert.Equal(t, []string{"5", "6"}, ids(got))
}

func TestPlayersNationality(t *testing.T) {
	got := Players(samplePlayers(), PlayerCriteria{Nationality: "espa"})
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestPlayersStatusIsExact(t *testing.T) {
	assert.Equal(t, []string{"3"}, ids(Players(samplePlayers(), PlayerCriteria{Status: "Aposentada"})))
	assert.Empty(t, Players(samplePlayers(), PlayerCriteria{Status: "aposentada"}))
	assert.Empty(t, Players(samplePlayers(), PlayerCriteria{Status: "Apos"}))
}

func TestPlayersCriteriaCombineWithAnd(t *testing.T) {
	got := Players(samplePlayers(), PlayerCriteria{Position: "Meio", Nationality: "Brasil", Status: "Ativo"})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestPlayersNoMatch(t *testing.T) {
	got := Players(samplePlayers(), PlayerCriteria{Search: "zzz"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPlayersDoesNotMutateInput(t *testing.T) {
	players := samplePlayers()
	before := append([]model.Player(nil), players...)

	_ = Players(players, PlayerCriteria{Search: "a", Status: "Ativo"})

	assert.Equal(t, before, players)
}

func TestPlayersSearchResultsContainText(t *testing.T) {
	players, err := fixtures.Players()
	require.NoError(t, err)

	for _, search := range []string{"a", "MAR", "silva", "in", "ese"} {
		for _, p := range Players(players, PlayerCriteria{Search: search}) {
			assert.Contains(t, strings.ToLower(p.Name), strings.ToLower(search))
		}
	}
}

func TestPlayersClearingRestoresCollection(t *testing.T) {
	players, err := fixtures.Players()
	require.NoError(t, err)

	filtered := Players(players, PlayerCriteria{Search: "marta"})
	require.Less(t, len(filtered), len(players))

	assert.Equal(t, players, Players(players, PlayerCriteria{}))
}

func TestEventsSearchMatchesTitleOrVenue(t *testing.T) {
	assert.Equal(t, []string{"1", "4"}, ids(Events(sampleEvents(), EventCriteria{Search: "são paulo"})))
	assert.Equal(t, []string{"2"}, ids(Events(sampleEvents(), EventCriteria{Search: "FUTSAL"})))
}

func TestEventsTypeIsExact(t *testing.T) {
	assert.Equal(t, []string{"2", "4"}, ids(Events(sampleEvents(), EventCriteria{Type: "Torneio"})))
	assert.Empty(t, Events(sampleEvents(), EventCriteria{Type: "torneio"}))
}

func TestEventsCombined(t *testing.T) {
	got := Events(sampleEvents(), EventCriteria{Search: "paulo", Type: "Torneio"})
	assert.Equal(t, []string{"4"}, ids(got))
}

func TestEventsEmptyCriteriaReturnsAll(t *testing.T) {
	events := sampleEvents()
	assert.Equal(t, events, Events(events, EventCriteria{}))
}

func TestEventsSearchResultsContainText(t *testing.T) {
	events, err := fixtures.Events()
	require.NoError(t, err)

	for _, search := range []string{"peneira", "SÃO", "o"} {
		for _, e := range Events(events, EventCriteria{Search: search}) {
			text := strings.ToLower(e.Title + "\n" + e.Venue)
			assert.Contains(t, text, strings.ToLower(search))
		}
	}
}

func TestCriteriaFromQuery(t *testing.T) {
	q := url.Values{
		"busca":         {"  marta "},
		"posicao":       {"Atacante"},
		"nacionalidade": {"   "},
		"status":        {"Ativo"},
	}
	c := PlayerCriteriaFromQuery(q)

	assert.Equal(t, PlayerCriteria{Search: "marta", Position: "Atacante", Status: "Ativo"}, c)
	assert.False(t, c.IsEmpty())
	assert.Equal(t, "busca=marta&posicao=Atacante&status=Ativo", c.Query().Encode())

	assert.True(t, PlayerCriteriaFromQuery(url.Values{}).IsEmpty())
}

func TestEventCriteriaFromQuery(t *testing.T) {
	c := EventCriteriaFromQuery(url.Values{"busca": {"copa"}, "tipo": {"Torneio"}})

	assert.Equal(t, EventCriteria{Search: "copa", Type: "Torneio"}, c)
	assert.Equal(t, "busca=copa&tipo=Torneio", c.Query().Encode())
	assert.True(t, EventCriteria{}.IsEmpty())
}
