package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/passa-a-bola/passa-web/internal/backend"
	"github.com/passa-a-bola/passa-web/internal/forms"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/session"
)

// Fallback messages when the remote API gives no detail
const (
	loginFailedMessage      = "Erro ao fazer login"
	loginUnreachableMessage = "Erro ao fazer login. Verifique suas credenciais."
	registerFailedMessage   = "Erro ao fazer cadastro. Tente novamente."
	RegisteredMessage       = "Cadastro realizado com sucesso! Faça login para continuar."
)

// Error is an authentication failure with a message fit for the visitor
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the visitor-facing text for an error returned by Service
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	var ve *forms.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return loginFailedMessage
}

// API is the part of the remote client used for authentication
type API interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResponse, error)
	Register(ctx context.Context, req backend.RegisterRequest) (*backend.RegisterResponse, error)
}

// FeedResetter drops client-side state tied to a session
type FeedResetter interface {
	Reset(clientID string)
}

// Service runs the login, registration and logout flows
type Service struct {
	api      API
	sessions *session.Store
	feed     FeedResetter
	logger   *slog.Logger
}

// New creates an auth Service
func New(api API, sessions *session.Store, feed FeedResetter, logger *slog.Logger) *Service {
	return &Service{
		api:      api,
		sessions: sessions,
		feed:     feed,
		logger:   logger,
	}
}

// Login validates the form, exchanges the credentials for a token and
// stores the resulting session for the client
func (s *Service) Login(ctx context.Context, clientID string, form forms.Login) (session.Session, error) {
	if err := form.Validate(); err != nil {
		return session.Session{}, err
	}

	resp, err := s.api.Login(ctx, form.Email, form.Password)
	if err != nil {
		s.logger.Info("login failed",
			slog.String("email", form.Email),
			slog.String("error", err.Error()),
		)
		return session.Session{}, &Error{Message: loginMessage(err), Err: err}
	}

	user := model.User{
		Email: form.Email,
		Name:  resp.Name,
		Role:  resp.Role,
	}
	if user.Name == "" {
		user.Name = user.DisplayName()
	}

	sess, err := s.sessions.Login(ctx, clientID, resp.AccessToken, user)
	if err != nil {
		return session.Session{}, &Error{Message: loginFailedMessage, Err: err}
	}

	s.logger.Info("login succeeded",
		slog.String("email", form.Email),
		slog.String("role", string(user.Role)),
	)
	return sess, nil
}

// Register validates the form and creates the account remotely. A failed
// validation never reaches the remote API.
func (s *Service) Register(ctx context.Context, form forms.Register) error {
	if err := form.Validate(); err != nil {
		return err
	}

	_, err := s.api.Register(ctx, backend.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     form.Role,
	})
	if err != nil {
		msg := backend.Detail(err)
		if msg == "" {
			msg = registerFailedMessage
		}
		s.logger.Info("registration failed",
			slog.String("email", form.Email),
			slog.String("error", err.Error()),
		)
		return &Error{Message: msg, Err: err}
	}

	s.logger.Info("registration succeeded",
		slog.String("email", form.Email),
		slog.String("role", string(form.Role)),
	)
	return nil
}

// Logout clears the stored session and the client's feed
func (s *Service) Logout(ctx context.Context, clientID string) error {
	s.feed.Reset(clientID)
	return s.sessions.Logout(ctx, clientID)
}

func loginMessage(err error) string {
	var se *backend.StatusError
	if errors.As(err, &se) {
		if se.Detail != "" {
			return se.Detail
		}
		return loginFailedMessage
	}
	return loginUnreachableMessage
}
