package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/passa-a-bola/passa-web/internal/api/apierr"
	"github.com/passa-a-bola/passa-web/internal/api/response"
	"github.com/passa-a-bola/passa-web/internal/backend"
	"github.com/passa-a-bola/passa-web/internal/forms"
	"github.com/passa-a-bola/passa-web/internal/model"
	"github.com/passa-a-bola/passa-web/internal/session"
)

// Authenticator exchanges credentials for a token on the remote API
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResponse, error)
}

// AuthHandler proxies login to the remote API
type AuthHandler struct {
	api    Authenticator
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(api Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{api: api, logger: logger}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req response.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	form := forms.Login{Email: req.Email, Password: req.Password}
	if err := form.Validate(); err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp, err := h.api.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		h.logger.Info("api login rejected", slog.String("error", err.Error()))
		var se *backend.StatusError
		if !errors.As(err, &se) {
			// Transport failure: nothing to say about the credentials
			err = apierr.NewUpstreamError()
		}
		apierr.WriteError(w, err)
		return
	}

	exp, err := session.ExpiresAt(resp.AccessToken)
	if err != nil {
		h.logger.Error("remote API issued unreadable token", slog.String("error", err.Error()))
		apierr.WriteError(w, apierr.NewUpstreamError())
		return
	}

	response.JSON(w, http.StatusOK, response.Login{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresAt:   exp.UTC(),
		User:        model.User{Email: form.Email, Name: resp.Name, Role: resp.Role},
	})
}

// TooManyAttempts answers a rate limited login
func (h *AuthHandler) TooManyAttempts(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewRateLimitedError())
}
