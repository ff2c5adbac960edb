package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/passa-a-bola/passa-web/internal/dependencies/clock"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/storage"
)

// Durable storage keys
const (
	TokenKey = "token"
	UserKey  = "user"
)

// ErrEmptyToken is returned when logging in without a token
var ErrEmptyToken = errors.New("token is required")

// Session is a client's proof of authentication
type Session struct {
	Token string
	User  *model.User
}

// IsAuthenticated reports whether both the token and the user are present
func (s Session) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

// HasRole reports whether the stored user has the given role
func (s Session) HasRole(role model.Role) bool {
	return s.User != nil && s.User.Role == role
}

// Store keeps token and user in lock-step in per-client storage
type Store struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a session Store
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Login stores the token and user together
func (s *Store) Login(ctx context.Context, clientID, token string, user model.User) (Session, error) {
	if token == "" {
		return Session{}, ErrEmptyToken
	}

	data, err := json.Marshal(user)
	if err != nil {
		return Session{}, fmt.Errorf("encode user: %w", err)
	}

	if err := s.storage.SetItems(ctx, clientID, map[string]string{
		TokenKey: token,
		UserKey:  string(data),
	}); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}

	return Session{Token: token, User: &user}, nil
}

// Logout removes the token and user together
func (s *Store) Logout(ctx context.Context, clientID string) error {
	if err := s.storage.RemoveItems(ctx, clientID, TokenKey, UserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Restore loads the client's session. Stored data that is incomplete,
// unreadable or carries an expired token is cleared and the logged-out
// session is returned instead of an error.
func (s *Store) Restore(ctx context.Context, clientID string) (Session, error) {
	items, err := s.storage.GetItems(ctx, clientID, TokenKey, UserKey)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}

	token, hasToken := items[TokenKey]
	rawUser, hasUser := items[UserKey]
	if !hasToken && !hasUser {
		return Session{}, nil
	}

	if !hasToken || !hasUser || token == "" {
		return s.discard(ctx, clientID, "incomplete session")
	}

	if err := CheckToken(token, s.clock.Now()); err != nil {
		return s.discard(ctx, clientID, err.Error())
	}

	var user *model.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user == nil {
		return s.discard(ctx, clientID, "malformed user")
	}

	return Session{Token: token, User: user}, nil
}

func (s *Store) discard(ctx context.Context, clientID, reason string) (Session, error) {
	s.logger.Info("discarding stored session",
		slog.String("client_id", clientID),
		slog.String("reason", reason),
	)
	if err := s.Logout(ctx, clientID); err != nil {
		s.logger.Warn("could not clear session",
			slog.String("client_id", clientID),
			slog.String("error", err.Error()),
		)
	}
	return Session{}, nil
}
