package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/passa-a-bola/passa-web/internal/model"
)

// BackendUser is an account known to the fake remote API
type BackendUser struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// Backend is an in-process stand-in for the remote Passa a Bola API
type Backend struct {
	server *httptest.Server

	mu          sync.Mutex
	users       map[string]BackendUser
	players     []model.Player
	events      []model.Event
	tournaments []model.Tournament
	failing     map[string]int
	requests    []Request
	tokenTTL    time.Duration
}

// Request records one call received by the fake API
type Request struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
}

// NewBackend starts a fake remote API that is closed when the test ends
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{
		users:    make(map[string]BackendUser),
		failing:  make(map[string]int),
		tokenTTL: time.Hour,
		players: []model.Player{
			{ID: "r1", Name: "Remote Player", Position: "Atacante", Nationality: "Brasil", Status: "Ativo"},
		},
		events: []model.Event{
			{ID: "r1", Title: "Remote Event", Type: "Peneira", Venue: "Recife", RegistrationOpen: true},
		},
		tournaments: []model.Tournament{
			{ID: "r1", Name: "Remote Cup", Status: model.TournamentInProgress},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", b.login)
	mux.HandleFunc("POST /auth/register", b.register)
	mux.HandleFunc("GET /api/players", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.players)
	})
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.events)
	})
	mux.HandleFunc("GET /api/tournaments", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.tournaments)
	})

	b.server = httptest.NewServer(b.record(mux))
	t.Cleanup(b.server.Close)
	return b
}

// URL returns the base URL of the fake API
func (b *Backend) URL() string {
	return b.server.URL
}

// Close stops the fake API so every call fails at the transport level
func (b *Backend) Close() {
	b.server.Close()
}

// Fail makes requests to path answer with the given status
func (b *Backend) Fail(path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failing[path] = status
}

// AddUser registers an account directly
func (b *Backend) AddUser(u BackendUser) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[u.Email] = u
}

// User returns a registered account
func (b *Backend) User(email string) (BackendUser, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[email]
	return u, ok
}

// SetPlayers replaces the players collection
func (b *Backend) SetPlayers(players []model.Player) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.players = players
}

// SetTokenTTL changes the lifetime of issued tokens; negative values issue expired tokens
func (b *Backend) SetTokenTTL(ttl time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokenTTL = ttl
}

// Requests returns every request received so far
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
		})
		status, failing := b.failing[r.URL.Path]
		b.mu.Unlock()

		if failing {
			writeJSON(w, status, map[string]string{"detail": "Erro simulado"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "Formulário inválido"})
		return
	}

	b.mu.Lock()
	user, ok := b.users[r.PostFormValue("username")]
	ttl := b.tokenTTL
	b.mu.Unlock()

	if !ok || user.Password != r.PostFormValue("password") {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Email ou senha incorretos"})
		return
	}

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.Email,
		"role": string(user.Role),
		"exp":  now.Add(ttl).Unix(),
	}).SignedString(SigningKey)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
		"role":         string(user.Role),
		"nome":         user.Name,
	})
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string     `json:"nome"`
		Email    string     `json:"email"`
		Password string     `json:"senha"`
		Role     model.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": "JSON inválido"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.users[req.Email]; exists {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"detail": "Email já cadastrado. Faça login ou use outro email.",
		})
		return
	}
	b.users[req.Email] = BackendUser{Name: req.Name, Email: req.Email, Password: req.Password, Role: req.Role}

	writeJSON(w, http.StatusCreated, map[string]string{
		"mensagem": "Usuário registrado com sucesso!",
		"email":    req.Email,
		"role":     string(req.Role),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
