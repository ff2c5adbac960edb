package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/passa-a-bola/passa-web/internal/api/apierr"
	"github.com/passa-a-bola/passa-web/internal/dependencies/clock"
	"github.com/passa-a-bola/passa-web/internal/session"
)

type contextKey string

const tokenContextKey contextKey = "token"

// Auth requires a bearer token whose exp claim is still in the future.
// The signature is left to the remote API that issued it.
func Auth(clk clock.Clock) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			if err := session.CheckToken(token, clk.Now()); err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// GetToken returns the bearer token accepted by Auth
func GetToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}
