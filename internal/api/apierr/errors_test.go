package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passa-a-bola/passa-web/internal/backend"
	"github.com/passa-a-bola/passa-web/internal/forms"
	"github.com/passa-a-bola/passa-web/internal/session"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"validation", forms.ErrMissingFields, http.StatusBadRequest, CodeValidationFailed, "Por favor, preencha todos os campos"},
		{"expired token", fmt.Errorf("check: %w", session.ErrTokenExpired), http.StatusUnauthorized, CodeTokenExpired, "Token has expired"},
		{"malformed token", session.ErrMalformedToken, http.StatusUnauthorized, CodeUnauthorized, "Invalid token"},
		{"remote 401", &backend.StatusError{StatusCode: 401, Detail: "Email ou senha incorretos"}, http.StatusUnauthorized, CodeInvalidCredentials, "Email ou senha incorretos"},
		{"remote 500", &backend.StatusError{StatusCode: 500}, http.StatusBadGateway, CodeUpstreamError, "Remote API error"},
		{"explicit", NewInvalidRequestError("bad body"), http.StatusBadRequest, CodeInvalidRequest, "bad body"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternalError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, tt.message, resp.Error.Message)
		})
	}
}
