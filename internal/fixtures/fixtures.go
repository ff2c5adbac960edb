// Package fixtures holds the bundled collections shown when the remote API
// cannot be reached.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/passa-a-bola/passa-web/internal/model"
)

//go:embed data/*.json
var files embed.FS

// TournamentCount is the tournament total shown when the remote API is down.
// No tournament fixture is bundled.
const TournamentCount = 12

// Players returns a fresh copy of the bundled players
func Players() ([]model.Player, error) {
	var players []model.Player
	if err := decode("data/jogadoras.json", &players); err != nil {
		return nil, err
	}
	return players, nil
}

// Events returns a fresh copy of the bundled events
func Events() ([]model.Event, error) {
	var events []model.Event
	if err := decode("data/eventos.json", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Tournaments returns the built-in tournament list
func Tournaments() []model.Tournament {
	teams := func(n int) *int { return &n }
	return []model.Tournament{
		{
			ID:              "1",
			Name:            "Copa Passa a Bola 2025",
			Description:     "Torneio nacional de futebol feminino amador.",
			StartDate:       "2025-11-15",
			Venue:           "São Paulo",
			RegisteredTeams: teams(32),
			Status:          model.TournamentInProgress,
		},
		{
			ID:              "2",
			Name:            "Liga Feminina de Várzea",
			Description:     "Campeonato de pontos corridos entre times de bairro.",
			StartDate:       "2026-01-20",
			Venue:           "Rio de Janeiro",
			RegisteredTeams: teams(14),
			Status:          model.TournamentRegistrationOpen,
		},
		{
			ID:              "3",
			Name:            "Taça Sub-17 Nordeste",
			StartDate:       "2025-08-02",
			Venue:           "Recife",
			RegisteredTeams: teams(12),
			Status:          model.TournamentFinished,
		},
	}
}

func decode(name string, v any) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
