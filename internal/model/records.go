package model

// Player is a football player profile as served by the remote API
type Player struct {
	ID            string   `json:"id"`
	Name          string   `json:"nome"`
	Age           *int     `json:"idade,omitempty"`
	Position      string   `json:"posicao"`
	Nationality   string   `json:"nacionalidade,omitempty"`
	CurrentClub   string   `json:"clube_atual,omitempty"`
	Height        *float64 `json:"altura,omitempty"`
	Weight        *float64 `json:"peso,omitempty"`
	PreferredFoot string   `json:"pe_preferido,omitempty"`
	Status        string   `json:"status,omitempty"`
	Photo         string   `json:"foto,omitempty"`
	Bio           string   `json:"bio,omitempty"`
	CareerGoals   *int     `json:"gols_carreira,omitempty"`
	Assists       *int     `json:"assistencias,omitempty"`
	MatchesPlayed *int     `json:"partidas_jogadas,omitempty"`
}

// Event is a tryout, tournament, festival or clinic
type Event struct {
	ID               string `json:"id"`
	Title            string `json:"titulo"`
	Description      string `json:"descricao"`
	Type             string `json:"tipo"`
	Date             string `json:"data"`
	Time             string `json:"horario"`
	Venue            string `json:"local"`
	Address          string `json:"endereco"`
	Capacity         *int   `json:"vagas,omitempty"`
	AvailableSpots   *int   `json:"vagas_disponiveis,omitempty"`
	Category         string `json:"categoria,omitempty"`
	Organizer        string `json:"organizador,omitempty"`
	RegistrationOpen bool   `json:"inscricoes_abertas"`
}

// Event types offered by the events filter
var EventTypes = []string{"Peneira", "Torneio", "Festival", "Clínica"}

// Tournament status values
const (
	TournamentInProgress       = "Em andamento"
	TournamentRegistrationOpen = "Inscricoes abertas"
	TournamentFinished         = "Finalizado"
)

// Tournament is a competition with registered teams
type Tournament struct {
	ID              string `json:"id"`
	Name            string `json:"nome"`
	Description     string `json:"descricao,omitempty"`
	StartDate       string `json:"data_inicio,omitempty"`
	Venue           string `json:"local,omitempty"`
	RegisteredTeams *int   `json:"equipes_registradas,omitempty"`
	Status          string `json:"status,omitempty"`
}

// Stats holds the dashboard counters
type Stats struct {
	Players     int `json:"total_jogadoras"`
	Events      int `json:"total_eventos"`
	Tournaments int `json:"total_torneios"`
}
